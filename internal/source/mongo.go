package source

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commerce-dashboard/internal/table"
)

// MongoSource reads each table from the collection of the same name.
// Documents are flattened to string records over the union of top-level
// keys; the synthetic _id is dropped when the documents carry their own
// identifier columns.
type MongoSource struct {
	client *mongo.Client
	db     string
}

func OpenMongo(ctx context.Context, uri, db string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &MongoSource{client: client, db: db}, nil
}

func (s *MongoSource) Fetch(ctx context.Context, name string) (table.Table, error) {
	cursor, err := s.client.Database(s.db).Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return table.Empty(), fmt.Errorf("find %s: %w", name, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return table.Empty(), fmt.Errorf("decode %s: %w", name, err)
	}
	if len(docs) == 0 {
		return table.Empty(), nil
	}

	keySet := map[string]struct{}{}
	for _, doc := range docs {
		for k := range doc {
			if k == "_id" {
				continue
			}
			keySet[k] = struct{}{}
		}
	}
	header := make([]string, 0, len(keySet))
	for k := range keySet {
		header = append(header, k)
	}
	sort.Strings(header)

	out := table.Table{Header: header}
	for _, doc := range docs {
		rec := make([]string, len(header))
		for i, k := range header {
			rec[i] = formatBSONValue(doc[k])
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

func formatBSONValue(v interface{}) string {
	switch v := v.(type) {
	case primitive.DateTime:
		return v.Time().UTC().Format("2006-01-02 15:04:05")
	case primitive.ObjectID:
		return v.Hex()
	case time.Time:
		return v.UTC().Format("2006-01-02 15:04:05")
	default:
		return formatValue(v)
	}
}

func (s *MongoSource) Close() error {
	return s.client.Disconnect(context.Background())
}
