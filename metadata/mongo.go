package metadata

import (
	"fmt"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

const diodesCollection = "diodes"

// MongoStore serves detector hardware records from the internal metadata
// database.
type MongoStore struct {
	session    *mgo.Session
	collection string
}

// NewMongoStore establishes a connection to the metadata database.
func NewMongoStore(url string) (*MongoStore, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial metadata db: %w", err)
	}
	return &MongoStore{session: session, collection: diodesCollection}, nil
}

// Get implements Store. The record is decoded into a fresh value per call,
// so callers can never mutate a driver-side cache.
func (s *MongoStore) Get(name string) (DetectorMetadata, error) {
	var det DetectorMetadata
	err := s.session.DB("").C(s.collection).Find(bson.M{"name": name}).One(&det)
	if err == mgo.ErrNotFound {
		return DetectorMetadata{}, errors.NewLookup("detector", name)
	}
	if err != nil {
		return DetectorMetadata{}, fmt.Errorf("fetch detector %q: %w", name, err)
	}
	return det, nil
}

// Close releases the database session.
func (s *MongoStore) Close() {
	s.session.Close()
}
