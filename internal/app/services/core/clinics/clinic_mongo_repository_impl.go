package clinics

import (
	"context"
	"errors"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClinicMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicMongoRepository(db *mongo.Client, dbName string) contracts.ClinicRepository {
	return &ClinicMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClinics),
	}
}

func (r *ClinicMongoRepository) FindAll(ctx context.Context) ([]models.Clinic, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	clinics := []models.Clinic{}
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, nil
}

func (r *ClinicMongoRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.Collection.FindOne(ctx, bson.M{"_id": clinicID}).Decode(&clinic)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrMongoDBDocumentNotFound(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}

func (r *ClinicMongoRepository) Create(ctx context.Context, clinic *models.Clinic) error {
	_, err := r.Collection.InsertOne(ctx, clinic)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) Update(ctx context.Context, clinic *models.Clinic) error {
	filter := bson.M{"_id": clinic.ID}
	update := bson.M{"$set": bson.M{
		"name":       clinic.Name,
		"address":    clinic.Address,
		"phone":      clinic.Phone,
		"ceo_id":     clinic.CEOID,
		"updated_at": clinic.UpdatedAt,
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBDocumentNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *ClinicMongoRepository) Delete(ctx context.Context, clinicID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": clinicID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrMongoDBDocumentNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
