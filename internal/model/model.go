package model

// RegisteredUser is the full stored credential record. Passwords stay
// plaintext to preserve the demo's observable contract; this is not a real
// authentication system.
type RegisteredUser struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
}

// AuthUser is the minimal session projection persisted under the "user" key.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Appointment struct {
	ID              string `json:"id"`
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	DoctorSpecialty string `json:"doctorSpecialty"`
	DateTime        string `json:"dateTime"`
	Location        string `json:"location"`
	DoctorPhoto     string `json:"doctorPhoto"`
}

// Doctor is a read-only catalog entry. The catalog is a fixed table and never
// changes at runtime.
type Doctor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Photo        string   `json:"photo"`
	Availability []string `json:"availability"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Price        float64  `json:"price"`
}
