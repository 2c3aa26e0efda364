package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel-webapp/config"
	"travel-webapp/model"
)

var ctx = context.TODO()

var (
	UsersCollection         *mongo.Collection
	PlacesCollection        *mongo.Collection
	HotelsCollection        *mongo.Collection
	PackagesCollection      *mongo.Collection
	BookingsCollection      *mongo.Collection
	NotificationsCollection *mongo.Collection
	ReviewsCollection       *mongo.Collection
	BlogsCollection         *mongo.Collection
)

// ErrNotFound is returned when a lookup by id resolves no document.
var ErrNotFound = errors.New("document not found")

// ErrStaleStatus is returned when a compare-and-swap status update loses
// a race: the booking moved to another status between read and write.
var ErrStaleStatus = errors.New("booking status changed concurrently")

func DBInit(collectionName string) (*mongo.Collection, error) {
	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}

	clientOptions := options.Client().ApplyURI(connString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return client.Database(config.DatabaseName()).Collection(collectionName), nil
}

func GetUserData(userLogin string) (model.UserData, error) {
	var user model.UserData
	err := UsersCollection.FindOne(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return model.UserData{}, ErrNotFound
	} else if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}
	return user, nil
}

func GetUserByLoginExists(userLogin string) (bool, error) {
	count, err := UsersCollection.CountDocuments(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindById decodes the document with the given id into out, which must be
// a pointer to the matching model type.
func FindById(coll *mongo.Collection, id primitive.ObjectID, out interface{}) error {
	err := coll.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// FindMany decodes every document matching filter into results, which must
// be a pointer to a slice of the matching model type.
func FindMany(coll *mongo.Collection, filter interface{}, results interface{}) error {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, results)
}

func WriteToCollection(item interface{}, coll *mongo.Collection) error {
	_, err := coll.InsertOne(ctx, item)
	return err
}

func UpdateCollectionItem(id primitive.ObjectID, item interface{}, coll *mongo.Collection) error {
	res, err := coll.ReplaceOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCollectionItem(id primitive.ObjectID, coll *mongo.Collection) error {
	res, err := coll.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementField adjusts a numeric field atomically with $inc, never
// read-modify-write, so concurrent bookings cannot lose counter updates.
func IncrementField(coll *mongo.Collection, id primitive.ObjectID, field string, delta int64) error {
	_, err := coll.UpdateByID(ctx, id, bson.D{primitive.E{Key: "$inc",
		Value: bson.D{primitive.E{Key: field, Value: delta}}}})
	return err
}

// ReplaceBookingIfStatus persists booking only if its stored status still
// equals prevStatus. A lost race returns ErrStaleStatus instead of
// silently overwriting a concurrent transition.
func ReplaceBookingIfStatus(booking model.Booking, prevStatus model.BookingStatus) error {
	filter := bson.D{
		primitive.E{Key: "_id", Value: booking.Id},
		primitive.E{Key: "status", Value: prevStatus},
	}
	res, err := BookingsCollection.ReplaceOne(ctx, filter, booking)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStaleStatus
	}
	return nil
}

// SetNextTrip replaces the user's journey trip plan wholesale.
func SetNextTrip(userId primitive.ObjectID, trip model.TripPlan) error {
	res, err := UsersCollection.UpdateByID(ctx, userId, bson.D{primitive.E{Key: "$set",
		Value: bson.D{primitive.E{Key: "journey.next_trip", Value: trip}}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordCategoryClick bumps both the place's global click counter and the
// clicking user's per-category history.
func RecordCategoryClick(userId primitive.ObjectID, placeId primitive.ObjectID, category string) error {
	if err := IncrementField(PlacesCollection, placeId, "clicks", 1); err != nil {
		return err
	}
	err := UsersCollection.FindOneAndUpdate(ctx,
		bson.D{primitive.E{Key: "_id", Value: userId}},
		bson.D{primitive.E{Key: "$inc",
			Value: bson.D{primitive.E{Key: "journey.category_clicks." + category, Value: 1}}}},
	).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
