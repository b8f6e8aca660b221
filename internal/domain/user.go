package domain

type User struct {
	Id       UserId
	Name     string
	Login    Login
	PassHash string
	Admin    bool
}

type UserCreationData struct {
	Name     string
	Login    Login
	PassHash string
}
