package dto

// LoginForm is the POST /login body.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UpdateProfileForm is the POST /profile/update body.
type UpdateProfileForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email"`
}

// ChangePasswordForm is the POST /profile/change-password body.
type ChangePasswordForm struct {
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}
