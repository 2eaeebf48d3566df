package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleGuide UserRole = "guide"
)

type User struct {
	Base
	Name             string   `db:"name"`
	Email            string   `db:"email"`
	PasswordHash     string   `db:"password"`
	Phone            *string  `db:"phone"`
	Role             UserRole `db:"role"`
	AvatarURL        *string  `db:"avatar_url"`
	EmailVerified    bool     `db:"is_email_verified"`
	Address          *string  `db:"address"`
	EmergencyContact *string  `db:"emergency_contact"`
	TravelHistory    []string `db:"travel_history"`
	Preferences      UserInfo `db:"preferences"`
	IsActive         bool     `db:"is_active"`
}
