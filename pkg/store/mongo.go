package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/observability"
	"github.com/draftwise/draftcore/pkg/shape"
)

// MongoStore persists drawings in a MongoDB collection, one document per
// drawing keyed by name. Shapes are stored as kind-tagged BSON
// subdocuments so drawings can be queried by shape fields server-side.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig holds connection settings for a MongoDB store.
type MongoConfig struct {
	// URI is the MongoDB connection string, e.g. "mongodb://localhost:27017".
	URI string
	// Database is the database name. Defaults to "draftcore".
	Database string
	// Collection is the collection name. Defaults to "drawings".
	Collection string
}

// drawingDoc is the stored form of a drawing.
type drawingDoc struct {
	Name      string     `bson:"_id"`
	Shapes    []bson.Raw `bson:"shapes"`
	UpdatedAt time.Time  `bson:"updatedAt"`
}

// bsonKindHeader peeks the discriminant of one stored shape.
type bsonKindHeader struct {
	Kind shape.Kind `bson:"kind"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping. It returns an error if the server is unreachable.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "draftcore"
	}
	if cfg.Collection == "" {
		cfg.Collection = "drawings"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongodb")
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Load retrieves a drawing by name.
func (s *MongoStore) Load(ctx context.Context, name string) (d *io.Drawing, err error) {
	start := time.Now()
	defer func() {
		shapes := 0
		if d != nil {
			shapes = len(d.Shapes)
		}
		observability.Store().OnLoad(ctx, "mongo", name, shapes, time.Since(start), err)
	}()

	if err = errors.ValidateName(name); err != nil {
		return nil, err
	}

	var doc drawingDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDrawingNotFound, "drawing %q not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load drawing %q", name)
	}

	d = &io.Drawing{
		Name:   doc.Name,
		Shapes: make([]shape.Shape, 0, len(doc.Shapes)),
	}
	for i, raw := range doc.Shapes {
		var hdr bsonKindHeader
		if err = bson.Unmarshal(raw, &hdr); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "drawing %q: shape %d: decode kind", name, i)
		}
		sh, ok := io.NewShape(hdr.Kind)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidKind, "drawing %q: shape %d: unknown kind %q", name, i, hdr.Kind)
		}
		if err = bson.Unmarshal(raw, sh); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "drawing %q: shape %d (%s): decode", name, i, hdr.Kind)
		}
		d.Shapes = append(d.Shapes, sh)
	}
	return d, nil
}

// Save stores a drawing under its name, replacing any previous version.
func (s *MongoStore) Save(ctx context.Context, d *io.Drawing) (err error) {
	start := time.Now()
	defer func() {
		observability.Store().OnSave(ctx, "mongo", d.Name, len(d.Shapes), time.Since(start), err)
	}()

	if err = errors.ValidateName(d.Name); err != nil {
		return err
	}

	doc := drawingDoc{
		Name:      d.Name,
		Shapes:    make([]bson.Raw, 0, len(d.Shapes)),
		UpdatedAt: time.Now().UTC(),
	}
	for _, sh := range d.Shapes {
		raw, merr := marshalShapeBSON(sh)
		if merr != nil {
			err = merr
			return err
		}
		doc.Shapes = append(doc.Shapes, raw)
	}

	_, err = s.collection.ReplaceOne(ctx, bson.M{"_id": d.Name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save drawing %q", d.Name)
	}
	return nil
}

// List returns the names of all stored drawings, sorted.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list drawings")
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "list drawings")
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list drawings")
	}
	return names, nil
}

// Delete removes a drawing by name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete drawing %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeDrawingNotFound, "drawing %q not found", name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// marshalShapeBSON serializes one shape with its "kind" discriminant
// injected alongside the concrete fields.
func marshalShapeBSON(sh shape.Shape) (bson.Raw, error) {
	raw, err := bson.Marshal(sh)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode shape %s", sh.Header().ID)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode shape %s", sh.Header().ID)
	}
	fields["kind"] = string(sh.Kind())
	out, err := bson.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode shape %s", sh.Header().ID)
	}
	return bson.Raw(out), nil
}

var _ Store = (*MongoStore)(nil)
