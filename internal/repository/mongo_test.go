package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockT returns an mtest harness whose subtests talk to a scripted
// deployment instead of a live server.
func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func cursorOf(mt *mtest.T, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, docs...)
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: fsd13.users index: email_unique",
	})
}

func commandErrorResponse() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{
		Code:    2,
		Message: "bad value",
		Name:    "BadValue",
	})
}
