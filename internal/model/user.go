package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account document in the `users` collection.  The
// bson tags mirror the document fields exactly; `_id` is assigned by the
// store on insert and never reassigned afterwards.  The externally
// supplied numeric ID is a legacy requirement and is not unique.
//
// Fields:
//  DBID       – store-assigned document identifier (users._id).
//  ID         – legacy numeric identifier, 0..2020.
//  Email      – login email; treated as the unique business key.
//  GivenName  – alphanumeric, 3..30 chars.
//  FamilyName – alphanumeric, 3..30 chars.
//  Password   – stored verbatim; login matches on the (email, password) pair.
//  About      – bounded free text, 3..255 chars.
//  Created    – set once at insert, never mutated by update.
//  Token      – last issued auth token, overwritten on each login.
type User struct {
	DBID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID         int                `bson:"id" json:"id"`
	Email      string             `bson:"email" json:"email"`
	GivenName  string             `bson:"givenName" json:"givenName"`
	FamilyName string             `bson:"familyName" json:"familyName"`
	Password   string             `bson:"password" json:"password"`
	About      string             `bson:"about" json:"about"`
	Created    time.Time          `bson:"created" json:"created"`
	Token      string             `bson:"token,omitempty" json:"token,omitempty"`
}

// PublicProfile is the projection returned by the all-users listing:
// the display name ("<givenName> <familyName>") and the about text.
type PublicProfile struct {
	Name  string `json:"name"`
	About string `json:"about"`
}
