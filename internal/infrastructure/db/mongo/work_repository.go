package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frontridge/frontridge-api/internal/core/domain"
	"github.com/frontridge/frontridge-api/internal/core/ports"
)

const collectionWorks = "works"

type WorkRepository struct {
	col *mongo.Collection
}

func NewWorkRepository(db *mongo.Database) *WorkRepository {
	return &WorkRepository{col: db.Collection(collectionWorks)}
}

// workDoc is the persisted shape of a work. It is kept separate from the
// domain type so the collection layout is not coupled to the public view.
type workDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Description      string             `bson:"description"`
	Category         string             `bson:"category,omitempty"`
	TitleImageURL    string             `bson:"titleImageUrl"`
	GalleryImageURLs []string           `bson:"galleryImageUrls"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        *time.Time         `bson:"updatedAt,omitempty"`
}

func (d *workDoc) toDomain() *domain.Work {
	gallery := d.GalleryImageURLs
	if gallery == nil {
		gallery = []string{}
	}
	return &domain.Work{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Description:      d.Description,
		Category:         domain.NormalizeCategory(domain.Category(d.Category)),
		TitleImageURL:    d.TitleImageURL,
		GalleryImageURLs: gallery,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// List returns every work, newest first. The secondary _id sort keeps the
// order of equal timestamps stable within a single call.
func (r *WorkRepository) List(ctx context.Context) ([]*domain.Work, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer cursor.Close(ctx)

	works := make([]*domain.Work, 0)
	for cursor.Next(ctx) {
		var doc workDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode work: %w", err)
		}
		works = append(works, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

// Insert stores a new work and returns it with the assigned id.
func (r *WorkRepository) Insert(ctx context.Context, w *domain.Work) (*domain.Work, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := workDoc{
		Name:             w.Name,
		Description:      w.Description,
		Category:         string(w.Category),
		TitleImageURL:    w.TitleImageURL,
		GalleryImageURLs: w.GalleryImageURLs,
		CreatedAt:        w.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert work: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert work: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

// UpdateByID applies a partial update and returns the updated work.
func (r *WorkRepository) UpdateByID(ctx context.Context, id string, patch ports.WorkPatch) (*domain.Work, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.TitleImageURL != nil {
		set["titleImageUrl"] = *patch.TitleImageURL
	}
	if patch.HasGallery {
		set["galleryImageUrls"] = patch.GalleryImageURLs
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update work: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrWorkNotFound
	}

	var doc workDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkNotFound
		}
		return nil, fmt.Errorf("reload work: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a work permanently.
func (r *WorkRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list sort.
func (r *WorkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidWorkID
	}
	return oid, nil
}
