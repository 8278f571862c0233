package model

// Review is a rating plus comment authored by one member for one business.
// The composite unique index enforces at most one review per
// (member, business) pair at the store level, so concurrent creates for the
// same pair cannot both succeed.
type Review struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Rating  int    `gorm:"column:rating;not null"` // 1..5, validated at the API layer
	Comment string `gorm:"column:comment;type:TEXT"`

	MemberID   uint32 `gorm:"column:member_id;not null;uniqueIndex:idx_review_member_business"`
	BusinessID uint32 `gorm:"column:business_id;not null;uniqueIndex:idx_review_member_business"`

	BaseEntity
}

// TableName specifies the table name for Review
func (*Review) TableName() string {
	return "reviews"
}

// NewReview creates a new Review instance
func NewReview(memberID, businessID uint32, rating int, comment string) *Review {
	return &Review{
		MemberID:   memberID,
		BusinessID: businessID,
		Rating:     rating,
		Comment:    comment,
	}
}
