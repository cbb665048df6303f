package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"comma separated", "a,b,c", []string{"a", "b", "c"}},
		{"comma separated with spaces", " a , b ,c ", []string{"a", "b", "c"}},
		{"already split", []string{"a", " b "}, []string{"a", "b"}},
		{"json decoded list", []interface{}{"a", "b"}, []string{"a", "b"}},
		{"empty string", "", []string{}},
		{"nil", nil, []string{}},
		{"trailing comma", "a,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.input))
		})
	}
}

func TestParseDescriptionImages(t *testing.T) {
	images, err := ParseDescriptionImages(`["a.png","b.png"]`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, images)

	images, err = ParseDescriptionImages("")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, images)

	images, err = ParseDescriptionImages("[]")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, images)

	_, err = ParseDescriptionImages("not json")
	assert.ErrorIs(t, err, models.ErrInvalidPayload)
}

func TestBlogGetByID(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateBlogRequest{Title: "My Post", Tags: []string{"a"}})
	require.NoError(t, err)

	blog, err := svc.Get(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "My Post", blog.Title)
	assert.False(t, blog.CreatedAt.IsZero())
}

func TestBlogGetBySlug(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBlogRequest{Title: "My Great Post"})
	require.NoError(t, err)

	// hyphens stand in for spaces; matching ignores case
	blog, err := svc.Get(ctx, "my-great-post")
	require.NoError(t, err)
	assert.Equal(t, "My Great Post", blog.Title)
	assert.Equal(t, "my great post", repo.lastTitleQuery)

	_, err = svc.Get(ctx, "no-such-post")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBlogUpdate(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateBlogRequest{Title: "Old Title"})
	require.NoError(t, err)

	err = svc.Update(ctx, id.Hex(), repository.UpdateBlogRequest{
		Title: "New Title",
		Tags:  []string{"x"},
	})
	require.NoError(t, err)

	blog, err := svc.Get(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "New Title", blog.Title)
	assert.NotNil(t, blog.UpdatedAt)
}

func TestBlogUpdateAndDeleteInvalidID(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	err := svc.Update(ctx, "bad-id", repository.UpdateBlogRequest{})
	assert.ErrorIs(t, err, models.ErrInvalidID)

	err = svc.Delete(ctx, "bad-id")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestBlogDelete(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)
	ctx := context.Background()

	id, err := svc.Create(ctx, CreateBlogRequest{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id.Hex()))

	err = svc.Delete(ctx, id.Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
