package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobText        string       `gorm:"type:text" json:"jobText"`
	RequiredSkills StringList   `gorm:"type:jsonb" json:"requiredSkills"`
	Domain         string       `gorm:"type:text;index" json:"domain"`
	JobEmbeddings  EmbeddingMap `gorm:"type:jsonb" json:"jobEmbeddings,omitempty"`
	Title          string       `gorm:"type:text;index" json:"title"`
	Company        string       `gorm:"type:text" json:"company"`
	Location       string       `gorm:"type:text" json:"location"`
	CreatedAt      time.Time    `gorm:"type:timestamp;default:now()" json:"createdAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}
