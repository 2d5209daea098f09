package model

import (
	"fmt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// BoardGame is a catalogue entry. ObjectID is the external game id, not the document id.
type BoardGame struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ObjectID int                `bson:"objectId"`

	Name          string `bson:"name"`
	YearPublished int    `bson:"yearPublished,omitempty"`
	MinPlayers    int    `bson:"minPlayers,omitempty"`
	MaxPlayers    int    `bson:"maxPlayers,omitempty"`
	PlayingTime   int    `bson:"playingTime,omitempty"`
	Thumbnail     string `bson:"thumbnail,omitempty"`
	Image         string `bson:"image,omitempty"`
}

// Play is one recorded session of a game. ID is the upsert key, ObjectID groups plays by game.
type Play struct {
	ID       int64 `bson:"_id"`
	ObjectID int   `bson:"objectId"`

	Date       PlayDate       `bson:"date"`
	Quantity   int            `bson:"quantity"`
	Length     int            `bson:"length"`
	Incomplete bool           `bson:"incomplete"`
	NoWinStats bool           `bson:"noWinStats"`
	Location   string         `bson:"location,omitempty"`
	Comments   string         `bson:"comments,omitempty"`
	Players    []PlayerResult `bson:"players,omitempty"`
}

type PlayerResult struct {
	Username      string `bson:"username,omitempty"`
	UserID        int    `bson:"userId,omitempty"`
	Name          string `bson:"name"`
	StartPosition string `bson:"startPosition,omitempty"`
	Color         string `bson:"color,omitempty"`
	Score         string `bson:"score,omitempty"`
	New           bool   `bson:"new"`
	Rating        int    `bson:"rating,omitempty"`
	Win           bool   `bson:"win"`
}

// BoardGameStatus holds the import state of a single game. There is at most one per ObjectID.
type BoardGameStatus struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ObjectID int                `bson:"objectId"`

	ImportSuccessful bool  `bson:"importSuccessful"`
	PlayCount        int64 `bson:"playCount"`
	LastImportedPage int   `bson:"lastImportedPage"`
}

const playDateLayout = "2006-01-02"

// PlayDate is a calendar day without a time or zone component.
type PlayDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewPlayDate(t time.Time) PlayDate {
	y, m, d := t.Date()
	return PlayDate{Year: y, Month: m, Day: d}
}

func ParsePlayDate(s string) (PlayDate, error) {
	t, err := time.Parse(playDateLayout, s)
	if err != nil {
		return PlayDate{}, fmt.Errorf("invalid play date %q: %w", s, err)
	}

	return NewPlayDate(t), nil
}

func (d PlayDate) IsZero() bool {
	return d == PlayDate{}
}

func (d PlayDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
