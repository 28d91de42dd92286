package model

type Message struct {
	BaseModel
	SenderID string `gorm:"type:text;not null;index" json:"sender_id" form:"-"`
	Sender   User   `gorm:"foreignKey:SenderID" json:"-"`
	// Null for group messages; visibility is then resolved by project team
	// membership instead of this field.
	RecipientID *string  `gorm:"type:text;default:null;index" json:"recipient_id" form:"recipient_id"`
	Recipient   *User    `gorm:"foreignKey:RecipientID" json:"-"`
	ProjectID   string   `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project     Project  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content     string   `gorm:"type:text;not null" json:"content" form:"content" binding:"required,strNotEmpty"`
	IsRead      bool     `gorm:"type:boolean;default:false" json:"is_read"`
	ParentID    *string  `gorm:"column:parent_message_id;type:text;default:null" json:"parent_message_id" form:"parent_message_id"`
	Parent      *Message `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`

	IsGroupMessage bool `gorm:"type:boolean;default:false" json:"is_group_message" form:"is_group_message"`
}

func (m Message) TableName() string {
	return "messages"
}
