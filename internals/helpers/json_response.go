// file: internals/helpers/json_response.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ===============================
   Write results (document-driver shape)
=================================*/

// The web client was written against a document store and reads these
// fields from every write response, so the names stay as they were.

type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool       `json:"acknowledged"`
	MatchedCount  int64      `json:"matchedCount"`
	ModifiedCount int64      `json:"modifiedCount"`
	UpsertedCount int64      `json:"upsertedCount"`
	UpsertedID    *uuid.UUID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Inserted(id uuid.UUID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

func Updated(matched, modified int64) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}
}

func Upserted(id uuid.UUID) UpdateResult {
	return UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}
}

func Deleted(n int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: n}
}

// JsonCreated: insert acknowledgement (POST)
func JsonCreated(c *fiber.Ctx, id uuid.UUID) error {
	return c.Status(fiber.StatusOK).JSON(Inserted(id))
}
