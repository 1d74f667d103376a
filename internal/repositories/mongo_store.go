package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"affiliatehub/internal/models"
	"affiliatehub/internal/utils"
)

const (
	accountCollection = "accountmanagers"
	leadCollection    = "leads"
)

// MongoStore keeps account managers and leads as documents. The account document
// embeds the lead id list and the capped activity log.
type MongoStore struct {
	client   *mongo.Client
	accounts *mongo.Collection
	leads    *mongo.Collection
}

type mongoActivityMetadata struct {
	LeadID      string `bson:"leadId,omitempty"`
	CompanyName string `bson:"companyName,omitempty"`
}

type mongoActivity struct {
	// Older entries carry ObjectIDs, newer ones ULID strings.
	ID          interface{}           `bson:"_id,omitempty"`
	Type        string                `bson:"type"`
	Description string                `bson:"description"`
	Metadata    mongoActivityMetadata `bson:"metadata"`
	CreatedAt   time.Time             `bson:"createdAt"`
}

type mongoAccount struct {
	ID              primitive.ObjectID   `bson:"_id"`
	ClerkID         string               `bson:"clerkId"`
	CommissionTotal float64              `bson:"commissionTotal"`
	Leads           []primitive.ObjectID `bson:"leads"`
	Activities      []mongoActivity      `bson:"activities"`
	CreatedAt       time.Time            `bson:"createdAt"`
}

type mongoLead struct {
	ID                     primitive.ObjectID `bson:"_id"`
	AccountManager         primitive.ObjectID `bson:"accountManager"`
	CompanyName            string             `bson:"companyName"`
	KvkNumber              string             `bson:"kvkNumber,omitempty"`
	ContactPersonFirstname string             `bson:"contactPersonFirstname"`
	ContactPersonLastname  string             `bson:"contactPersonLastname"`
	ContactEmail           string             `bson:"contactEmail"`
	ContactPhone           string             `bson:"contactPhone"`
	Notes                  string             `bson:"notes,omitempty"`
	Status                 string             `bson:"status"`
	CreatedAt              time.Time          `bson:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt"`
}

func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(database)
	return &MongoStore{
		client:   client,
		accounts: db.Collection(accountCollection),
		leads:    db.Collection(leadCollection),
	}, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup indexes used by the dashboard queries.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clerkId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create account index: %w", err)
	}
	if _, err := s.leads.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "accountManager", Value: 1}, {Key: "createdAt", Value: -1}},
	}); err != nil {
		return fmt.Errorf("create lead index: %w", err)
	}
	return nil
}

func (s *MongoStore) GetByExternalID(ctx context.Context, externalID string) (*models.Account, error) {
	opts := options.FindOne().SetProjection(bson.M{"activities": 0})
	var doc mongoAccount
	err := s.accounts.FindOne(ctx, bson.M{"clerkId": externalID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	acc := &models.Account{
		ID:              doc.ID.Hex(),
		ExternalID:      doc.ClerkID,
		CommissionTotal: doc.CommissionTotal,
		CreatedAt:       doc.CreatedAt,
	}
	for _, id := range doc.Leads {
		acc.LeadIDs = append(acc.LeadIDs, id.Hex())
	}
	return acc, nil
}

func (s *MongoStore) ListActivities(ctx context.Context, accountID string, limit int) ([]models.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, fmt.Errorf("account id %q: %w", accountID, err)
	}
	opts := options.FindOne().SetProjection(bson.M{"activities": bson.M{"$slice": limit}})
	var doc mongoAccount
	if err := s.accounts.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find activities: %w", err)
	}
	out := make([]models.Activity, 0, len(doc.Activities))
	for _, a := range doc.Activities {
		out = append(out, models.Activity{
			ID:          activityID(a.ID),
			Type:        a.Type,
			Description: a.Description,
			Metadata:    models.ActivityMetadata{LeadID: a.Metadata.LeadID, CompanyName: a.Metadata.CompanyName},
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}

func activityID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}

func leadQuery(f models.LeadFilter) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(f.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account id %q: %w", f.AccountID, err)
	}
	q := bson.M{"accountManager": oid}
	created := bson.M{}
	if f.From != nil {
		created["$gte"] = *f.From
	}
	if f.To != nil {
		created["$lte"] = *f.To
	}
	if len(created) > 0 {
		q["createdAt"] = created
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = string(st)
		}
		q["status"] = bson.M{"$in": statuses}
	}
	return q, nil
}

func (s *MongoStore) Count(ctx context.Context, f models.LeadFilter) (int, error) {
	q, err := leadQuery(f)
	if err != nil {
		return 0, err
	}
	n, err := s.leads.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return int(n), nil
}

func (s *MongoStore) List(ctx context.Context, f models.LeadFilter, limit int) ([]*models.Lead, error) {
	q, err := leadQuery(f)
	if err != nil {
		return nil, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.leads.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	defer cur.Close(ctx)

	var out []*models.Lead
	for cur.Next(ctx) {
		var doc mongoLead
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		out = append(out, &models.Lead{
			ID:                     doc.ID.Hex(),
			AccountID:              doc.AccountManager.Hex(),
			CompanyName:            doc.CompanyName,
			KvkNumber:              doc.KvkNumber,
			ContactPersonFirstname: doc.ContactPersonFirstname,
			ContactPersonLastname:  doc.ContactPersonLastname,
			ContactEmail:           doc.ContactEmail,
			ContactPhone:           doc.ContactPhone,
			Notes:                  doc.Notes,
			Status:                 models.LeadStatus(doc.Status),
			CreatedAt:              doc.CreatedAt,
		})
	}
	return out, cur.Err()
}

// CreateWithActivity inserts the lead and then pushes it onto the account document.
// Without a replica set there is no transaction; if the account update fails the lead
// is deleted again on a best-effort basis.
func (s *MongoStore) CreateWithActivity(ctx context.Context, lead *models.Lead, activity models.Activity) error {
	accOID, err := primitive.ObjectIDFromHex(lead.AccountID)
	if err != nil {
		return fmt.Errorf("account id %q: %w", lead.AccountID, err)
	}
	leadOID := primitive.NewObjectID()
	doc := mongoLead{
		ID:                     leadOID,
		AccountManager:         accOID,
		CompanyName:            lead.CompanyName,
		KvkNumber:              lead.KvkNumber,
		ContactPersonFirstname: lead.ContactPersonFirstname,
		ContactPersonLastname:  lead.ContactPersonLastname,
		ContactEmail:           lead.ContactEmail,
		ContactPhone:           lead.ContactPhone,
		Notes:                  lead.Notes,
		Status:                 string(lead.Status),
		CreatedAt:              lead.CreatedAt,
		UpdatedAt:              lead.CreatedAt,
	}
	if _, err := s.leads.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	lead.ID = leadOID.Hex()

	if activity.ID == "" {
		activity.ID = utils.NewID()
	}
	entry := mongoActivity{
		ID:          activity.ID,
		Type:        activity.Type,
		Description: activity.Description,
		Metadata:    mongoActivityMetadata{LeadID: lead.ID, CompanyName: activity.Metadata.CompanyName},
		CreatedAt:   activity.CreatedAt,
	}
	update := bson.M{"$push": bson.M{
		"leads": leadOID,
		"activities": bson.M{
			"$each":     []mongoActivity{entry},
			"$position": 0,
			"$slice":    models.ActivityLogCap,
		},
	}}
	res, err := s.accounts.UpdateByID(ctx, accOID, update)
	if err == nil && res.MatchedCount == 0 {
		err = ErrAccountMissing
	}
	if err != nil {
		if _, delErr := s.leads.DeleteOne(context.WithoutCancel(ctx), bson.M{"_id": leadOID}); delErr != nil {
			log.Printf("[mongo][lead] compensation failed lead=%s account=%s: %v", lead.ID, lead.AccountID, delErr)
		}
		lead.ID = ""
		return fmt.Errorf("push lead to account: %w", err)
	}
	return nil
}
