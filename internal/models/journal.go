package models

// JournalModel stores a journal card linking out to the full article.
type JournalModel struct {
	Base         `bson:",inline"`
	Title        string `json:"title"        bson:"title"`
	Thumbnail    string `json:"thumbnail"    bson:"thumbnail"` // object store URL
	Description  string `json:"description"  bson:"description"`
	HashnodeLink string `json:"hashnodeLink" bson:"hashnodeLink"`
}

func (JournalModel) CollectionName() string { return "journals" }
