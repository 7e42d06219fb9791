package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the connection gateway to the document store.  Every operation
// opens a fresh client, runs exactly one command and disconnects before
// returning.  That keeps each call crash-isolated at the cost of a new
// connection per call; a pooled client could be swapped in behind the same
// methods without touching the layers above.
type Mongo struct {
	user   string
	pass   string
	host   string
	authDB string
	dbName string
}

// New builds a gateway for the given store credentials.  No connection is
// attempted here; failures surface on the first operation.
func New(user, pass, host, authDB, dbName string) *Mongo {
	return &Mongo{user: user, pass: pass, host: host, authDB: authDB, dbName: dbName}
}

// URI renders the connection string used for each per-call client.
func (m *Mongo) URI() string {
	auth := m.user
	if m.pass != "" {
		auth = fmt.Sprintf("%s:%s", m.user, m.pass)
	}
	return fmt.Sprintf("mongodb://%s@%s/%s", auth, m.host, m.authDB)
}

// connect opens and verifies a client.  Ping distinguishes connection
// establishment failures (bad credentials, unreachable host, wrong auth db)
// from query errors; callers always see them wrapped as "connect store".
func (m *Mongo) connect(ctx context.Context) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.URI()))
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("connect store: %w", err)
	}
	return client, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

// FindOne decodes the single document matching filter into out and reports
// whether one was found.  "No document" is a false result, never an error.
func (m *Mongo) FindOne(ctx context.Context, coll string, filter bson.M, out any) (bool, error) {
	client, err := m.connect(ctx)
	if err != nil {
		return false, err
	}
	defer disconnect(client)

	err = client.Database(m.dbName).Collection(coll).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindAll decodes every document matching filter into out (a pointer to a
// slice).  An empty result decodes to an empty slice, not an error.
func (m *Mongo) FindAll(ctx context.Context, coll string, filter bson.M, out any) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer disconnect(client)

	cur, err := client.Database(m.dbName).Collection(coll).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// InsertOne writes a single document.  Store-native errors (including
// duplicate keys where an index enforces them) propagate unmodified.
func (m *Mongo) InsertOne(ctx context.Context, coll string, doc any) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer disconnect(client)

	_, err = client.Database(m.dbName).Collection(coll).InsertOne(ctx, doc)
	return err
}

// UpdateOne applies a $set of fields to the document matching filter and
// returns true only if exactly one document was modified.
func (m *Mongo) UpdateOne(ctx context.Context, coll string, filter, fields bson.M) (bool, error) {
	client, err := m.connect(ctx)
	if err != nil {
		return false, err
	}
	defer disconnect(client)

	res, err := client.Database(m.dbName).Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// DeleteOne removes the document matching filter and returns true only if
// exactly one document was removed.
func (m *Mongo) DeleteOne(ctx context.Context, coll string, filter bson.M) (bool, error) {
	client, err := m.connect(ctx)
	if err != nil {
		return false, err
	}
	defer disconnect(client)

	res, err := client.Database(m.dbName).Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
