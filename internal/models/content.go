// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package models

// User is a user record from the JSON source. ID is the source's identifier,
// not the MongoDB _id, and is unique among users.
type User struct {
	ID       int     `json:"id" bson:"id" validate:"required,min=1"`
	Name     string  `json:"name" bson:"name" validate:"required"`
	Username string  `json:"username" bson:"username" validate:"required"`
	Email    string  `json:"email" bson:"email" validate:"omitempty,email"`
	Address  Address `json:"address" bson:"address"`
	Phone    string  `json:"phone" bson:"phone"`
	Website  string  `json:"website" bson:"website"`
	Company  Company `json:"company" bson:"company"`
}

// Address is the postal address nested in a User.
type Address struct {
	Street  string `json:"street" bson:"street"`
	Suite   string `json:"suite" bson:"suite"`
	City    string `json:"city" bson:"city"`
	Zipcode string `json:"zipcode" bson:"zipcode"`
	Geo     Geo    `json:"geo" bson:"geo"`
}

// Geo holds coordinates as the source delivers them (decimal strings).
type Geo struct {
	Lat string `json:"lat" bson:"lat"`
	Lng string `json:"lng" bson:"lng"`
}

// Company is the employer nested in a User.
type Company struct {
	Name        string `json:"name" bson:"name"`
	CatchPhrase string `json:"catchPhrase" bson:"catchPhrase"`
	BS          string `json:"bs" bson:"bs"`
}

// Post belongs to the user whose id equals UserID.
type Post struct {
	ID     int    `json:"id" bson:"id" validate:"required,min=1"`
	UserID int    `json:"userId" bson:"userId" validate:"required,min=1"`
	Title  string `json:"title" bson:"title"`
	Body   string `json:"body" bson:"body"`
}

// Comment belongs to the post whose id equals PostID.
type Comment struct {
	ID     int    `json:"id" bson:"id" validate:"required,min=1"`
	PostID int    `json:"postId" bson:"postId" validate:"required,min=1"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Body   string `json:"body" bson:"body"`
}
