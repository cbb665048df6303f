package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realtyshopee/internal/models"
	"realtyshopee/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users     map[string]*models.User
	appendErr error
	appended  map[string][]primitive.ObjectID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*models.User{},
		appended: map[string][]primitive.ObjectID{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	user, ok := f.users[email]
	if !ok {
		return models.ErrUserNotFound
	}
	user.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) AppendProperty(ctx context.Context, username string, propertyID primitive.ObjectID) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended[username] = append(f.appended[username], propertyID)
	return nil
}

type fakeMailer struct {
	sendErr error
	sent    int
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent++
	f.to, f.subject, f.body = to, subject, body
	return f.sendErr
}

type fakePropertyRepo struct {
	docs map[primitive.ObjectID]models.PropertyDocument
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{docs: map[primitive.ObjectID]models.PropertyDocument{}}
}

func (f *fakePropertyRepo) Insert(ctx context.Context, doc models.PropertyDocument) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	f.docs[id] = doc
	return id, nil
}

func (f *fakePropertyRepo) GetAll(ctx context.Context) ([]models.PropertyDocument, error) {
	all := []models.PropertyDocument{}
	for _, doc := range f.docs {
		all = append(all, doc)
	}
	return all, nil
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (models.PropertyDocument, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return doc, nil
}

type fakeBlogRepo struct {
	blogs          map[primitive.ObjectID]*models.Blog
	lastTitleQuery string
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[primitive.ObjectID]*models.Blog{}}
}

func (f *fakeBlogRepo) Insert(ctx context.Context, blog *models.Blog) (primitive.ObjectID, error) {
	blog.ID = primitive.NewObjectID()
	clone := *blog
	f.blogs[blog.ID] = &clone
	return blog.ID, nil
}

func (f *fakeBlogRepo) GetAll(ctx context.Context) ([]models.Blog, error) {
	all := []models.Blog{}
	for _, blog := range f.blogs {
		all = append(all, *blog)
	}
	return all, nil
}

func (f *fakeBlogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	blog, ok := f.blogs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *blog
	return &clone, nil
}

func (f *fakeBlogRepo) GetByTitle(ctx context.Context, title string) (*models.Blog, error) {
	f.lastTitleQuery = title
	for _, blog := range f.blogs {
		if strings.EqualFold(blog.Title, title) {
			clone := *blog
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeBlogRepo) Update(ctx context.Context, id primitive.ObjectID, req repository.UpdateBlogRequest) error {
	blog, ok := f.blogs[id]
	if !ok {
		return models.ErrNotFound
	}
	now := time.Now()
	blog.Title = req.Title
	blog.Description = req.Description
	blog.FeatureImage = req.FeatureImage
	blog.Category = req.Category
	blog.Tags = req.Tags
	blog.Username = req.Username
	blog.UpdatedAt = &now
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.blogs[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.blogs, id)
	return nil
}

type fakeQueryRepo struct {
	insertErr error
	docs      []map[string]interface{}
}

func (f *fakeQueryRepo) Insert(ctx context.Context, doc map[string]interface{}) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.docs = append(f.docs, doc)
	return nil
}
