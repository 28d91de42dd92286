package model

import "github.com/ujenziiq/ujenziiq-go/internal/constant"

type User struct {
	BaseModel
	Email                   string            `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	Username                string            `gorm:"type:varchar(150);unique;not null" json:"username" form:"username" binding:"required,strNotEmpty"`
	Password                string            `gorm:"type:text;not null" json:"-" form:"-"`
	FirstName               string            `gorm:"type:varchar(30);not null" json:"first_name" form:"first_name" binding:"required"`
	LastName                string            `gorm:"type:varchar(30);not null" json:"last_name" form:"last_name" binding:"required"`
	UserType                constant.UserType `gorm:"type:varchar(20);not null;default:'worker'" json:"user_type" form:"user_type"`
	PhoneNumber             string            `gorm:"type:varchar(15);default:null" json:"phone_number" form:"phone_number"`
	Organization            string            `gorm:"type:varchar(100);default:null" json:"organization" form:"organization"`
	Position                string            `gorm:"type:varchar(100);default:null" json:"position" form:"position"`
	ProfileImage            string            `gorm:"type:text;default:null" json:"profile_image" form:"profile_image"`
	ReceiveSMSNotifications bool              `gorm:"type:boolean;default:false" json:"receive_sms_notifications" form:"receive_sms_notifications"`
}

func (u User) TableName() string {
	return "users"
}

// UserMini is the shallow user reference nested inside other payloads.
type UserMini struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	UserType  constant.UserType `json:"user_type"`
}

func (u User) Mini() UserMini {
	return UserMini{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserType:  u.UserType,
	}
}

func (u *User) MiniPtr() *UserMini {
	if u == nil || u.ID == "" {
		return nil
	}
	mini := u.Mini()
	return &mini
}
