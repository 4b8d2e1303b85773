// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"outfind/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// styleTags is the pool of style labels used for preferences, post tags, and
// clothing item styles. Free-form in the schema; a small pool here keeps the
// seeded feed interesting (overlap actually happens).
var styleTags = []string{
	"boho", "formal", "casual", "streetwear", "vintage",
	"minimalist", "athleisure", "preppy", "grunge", "y2k",
}

// categories matches the closet taxonomy the demo client uses.
var categories = []string{"top", "bottom", "shoes", "outerwear", "accessory"}

// Options controls how much demo data to generate.
type Options struct {
	Users        int
	PostsPerUser int
	ItemsPerUser int
	FollowRatio  float64 // probability that any ordered user pair gets an edge
}

// DefaultOptions returns a small but useful demo dataset shape.
func DefaultOptions() Options {
	return Options{
		Users:        25,
		PostsPerUser: 8,
		ItemsPerUser: 12,
		FollowRatio:  0.15,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pickTags samples 1..max distinct tags from the style pool.
func (f *Factory) pickTags(max int) []string {
	n := 1 + f.rand.Intn(max)
	perm := f.rand.Perm(len(styleTags))
	tags := make([]string, 0, n)
	for _, idx := range perm[:n] {
		tags = append(tags, styleTags[idx])
	}
	return tags
}

// CreateUser persists a demo user with random style preferences.
func (f *Factory) CreateUser() (*models.User, error) {
	user := &models.User{
		ID:               gofakeit.UUID(),
		Username:         fmt.Sprintf("%s_%d", gofakeit.Username(), f.rand.Intn(10000)),
		Bio:              gofakeit.Sentence(8),
		ProfileImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		StylePreferences: f.pickTags(3),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a demo post for the user with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:   user.ID,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Caption:  gofakeit.Sentence(6),
		Likes:    f.rand.Intn(500),
		Tags:     f.pickTags(4),
		CreatedAt: time.Now().
			Add(-time.Duration(f.rand.Intn(60*24*30)) * time.Minute),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateClothingItem persists a demo closet item for the user.
func (f *Factory) CreateClothingItem(user *models.User) (*models.ClothingItem, error) {
	item := &models.ClothingItem{
		UserID:   user.ID,
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/600/600", gofakeit.UUID()),
		Category: categories[f.rand.Intn(len(categories))],
		Style:    f.pickTags(3),
	}
	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Run seeds users, posts, closet items, and a follow mesh.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			if _, err := f.CreatePost(user); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
		for i := 0; i < opts.ItemsPerUser; i++ {
			if _, err := f.CreateClothingItem(user); err != nil {
				return fmt.Errorf("seed clothing item: %w", err)
			}
		}
	}

	// Follow mesh through the same transactional path production uses, so
	// the seeded counters match the seeded edges.
	edges := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID {
				continue
			}
			if f.rand.Float64() >= opts.FollowRatio {
				continue
			}
			res := db.Exec(
				`INSERT INTO follows (follower_id, following_id, created_at)
				 VALUES (?, ?, NOW())
				 ON CONFLICT (follower_id, following_id) DO NOTHING`,
				follower.ID, following.ID,
			)
			if res.Error != nil {
				return fmt.Errorf("seed follow: %w", res.Error)
			}
			if res.RowsAffected > 0 {
				db.Model(&models.User{}).Where("id = ?", following.ID).
					UpdateColumn("followers_count", gorm.Expr("followers_count + 1"))
				db.Model(&models.User{}).Where("id = ?", follower.ID).
					UpdateColumn("following_count", gorm.Expr("following_count + 1"))
				edges++
			}
		}
	}

	log.Printf("Seeded %d users, %d posts, %d closet items, %d follow edges",
		len(users), len(users)*opts.PostsPerUser, len(users)*opts.ItemsPerUser, edges)
	return nil
}
