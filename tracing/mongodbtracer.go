package tracing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/pagesim/interact"
	"github.com/tebeka/atexit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoTimeout = 10 * time.Second

// TransitionDocument is the stored form of a transition in MongoDB.
type TransitionDocument struct {
	Time      float64 `bson:"time"`
	Component string  `bson:"component"`
	Kind      string  `bson:"kind"`
	Detail    string  `bson:"detail,omitempty"`
}

func transitionDocument(tr interact.Transition) TransitionDocument {
	return TransitionDocument{
		Time:      float64(tr.Time),
		Component: tr.Component,
		Kind:      tr.Kind,
		Detail:    tr.Detail,
	}
}

// MongoDBTracer dumps transitions into a fresh MongoDB database, one
// batch at a time.
type MongoDBTracer struct {
	client     *mongo.Client
	collection *mongo.Collection
	database   string
	filter     TransitionFilter
	batchSize  int

	lock    sync.Mutex
	pending []any
	err     error
}

// NewMongoDBTracer connects to the server at uri and prepares the
// transitions collection. A nil filter stores everything.
func NewMongoDBTracer(
	uri string,
	filter TransitionFilter,
) (*MongoDBTracer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("tracing: connecting to MongoDB: %w", err)
	}

	t := newMongoDBTracer(filter)
	t.client = client
	t.database = "pagesim_" + xid.New().String()
	t.collection = client.Database(t.database).Collection(TransitionTable)

	if err := t.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	atexit.Register(func() { _ = t.Flush() })

	return t, nil
}

func newMongoDBTracer(filter TransitionFilter) *MongoDBTracer {
	if filter == nil {
		filter = AllTransitions
	}

	return &MongoDBTracer{
		filter:    filter,
		batchSize: 1000,
	}
}

func (t *MongoDBTracer) createIndexes(ctx context.Context) error {
	_, err := t.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "component", Value: "hashed"}}},
		{Keys: bson.D{{Key: "kind", Value: "hashed"}}},
		{Keys: bson.D{{Key: "time", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("tracing: creating indexes: %w", err)
	}

	return nil
}

// Database returns the name of the database the transitions go to.
func (t *MongoDBTracer) Database() string {
	return t.database
}

// Transition buffers tr. A full buffer is written out.
func (t *MongoDBTracer) Transition(tr interact.Transition) {
	if !t.filter(tr) {
		return
	}

	t.lock.Lock()
	if t.err != nil {
		t.lock.Unlock()
		return
	}

	t.pending = append(t.pending, transitionDocument(tr))
	full := len(t.pending) >= t.batchSize
	t.lock.Unlock()

	if full {
		_ = t.Flush()
	}
}

// Flush writes the buffered transitions.
func (t *MongoDBTracer) Flush() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.err != nil || len(t.pending) == 0 || t.collection == nil {
		return t.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	if _, err := t.collection.InsertMany(ctx, t.pending); err != nil {
		t.err = fmt.Errorf("tracing: inserting transitions: %w", err)
		return t.err
	}

	t.pending = nil

	return nil
}

// Err returns the first error met while storing. Nothing is stored after
// an error.
func (t *MongoDBTracer) Err() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.err
}

// Close flushes and disconnects.
func (t *MongoDBTracer) Close() error {
	err := t.Flush()

	if t.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
		defer cancel()

		if dErr := t.client.Disconnect(ctx); err == nil && dErr != nil {
			err = fmt.Errorf("tracing: %w", dErr)
		}
	}

	return err
}
