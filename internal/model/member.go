package model

// Member represents a registered end user who can author reviews.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Username string `gorm:"column:username;type:VARCHAR(100);not null;uniqueIndex:idx_member_username"` // login name (unique)
	Password string `gorm:"column:password;type:VARCHAR(60);not null"`                                  // bcrypt hash, never serialized

	// Reviews authored by this member
	Reviews []Review `gorm:"foreignKey:MemberID"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "members"
}

// NewMember creates a new Member instance.
// Note: password must already be hashed (handled in service layer).
func NewMember(username, password string) *Member {
	return &Member{
		Username: username,
		Password: password,
	}
}
