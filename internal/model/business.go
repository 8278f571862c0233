package model

// Business represents an entity that can be reviewed.
// Rows are created by the seed process; end users never mutate them.
type Business struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string `gorm:"column:name;type:VARCHAR(255);not null"`
	Description string `gorm:"column:description;type:TEXT"`
	City        string `gorm:"column:city;type:VARCHAR(100)"`

	// Reviews written for this business
	Reviews []Review `gorm:"foreignKey:BusinessID"`

	BaseEntity
}

// TableName specifies the table name for Business
func (*Business) TableName() string {
	return "businesses"
}

// NewBusiness creates a new Business instance
func NewBusiness(name, description, city string) *Business {
	return &Business{
		Name:        name,
		Description: description,
		City:        city,
	}
}
