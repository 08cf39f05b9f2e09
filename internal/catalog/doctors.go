package catalog

import "doctor-booking-api/internal/model"

var Specialties = []string{
	"Cardiology",
	"Dermatology",
	"Gastroenterology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Orthopedics",
	"Oncology",
}

var Doctors = []model.Doctor{
	{
		ID:           "1",
		Name:         "Dr. Sarah Johnson",
		Specialty:    "Cardiology",
		Photo:        "https://randomuser.me/api/portraits/women/68.jpg",
		Availability: []string{"Monday 9:00 AM", "Monday 11:00 AM", "Wednesday 2:00 PM", "Friday 10:00 AM"},
		Location:     "Medical Center, Building A, Room 302",
		Rating:       4.8,
		Price:        175.0,
	},
	{
		ID:           "2",
		Name:         "Dr. Michael Chen",
		Specialty:    "Dermatology",
		Photo:        "https://randomuser.me/api/portraits/men/32.jpg",
		Availability: []string{"Tuesday 10:00 AM", "Thursday 1:00 PM", "Thursday 3:00 PM", "Friday 9:00 AM"},
		Location:     "Dermatology Clinic, Suite 205",
		Rating:       4.6,
		Price:        150.0,
	},
	{
		ID:           "3",
		Name:         "Dr. Robert Williams",
		Specialty:    "Gastroenterology",
		Photo:        "https://randomuser.me/api/portraits/men/46.jpg",
		Availability: []string{"Monday 2:00 PM", "Tuesday 11:00 AM", "Wednesday 9:00 AM", "Thursday 10:00 AM"},
		Location:     "Medical Plaza, Floor 3, Room 312",
		Rating:       4.9,
		Price:        165.0,
	},
	{
		ID:           "4",
		Name:         "Dr. Emily Davis",
		Specialty:    "Neurology",
		Photo:        "https://randomuser.me/api/portraits/women/33.jpg",
		Availability: []string{"Monday 10:00 AM", "Wednesday 1:00 PM", "Thursday 11:00 AM", "Friday 2:00 PM"},
		Location:     "Neuroscience Center, Wing B, Room 415",
		Rating:       4.7,
		Price:        185.0,
	},
	{
		ID:           "5",
		Name:         "Dr. James Wilson",
		Specialty:    "Pediatrics",
		Photo:        "https://randomuser.me/api/portraits/men/64.jpg",
		Availability: []string{"Tuesday 9:00 AM", "Tuesday 1:00 PM", "Thursday 9:00 AM", "Friday 11:00 AM"},
		Location:     "Children's Health Center, Room 112",
		Rating:       4.9,
		Price:        140.0,
	},
	{
		ID:           "6",
		Name:         "Dr. Jessica Brown",
		Specialty:    "Psychiatry",
		Photo:        "https://randomuser.me/api/portraits/women/17.jpg",
		Availability: []string{"Monday 1:00 PM", "Wednesday 10:00 AM", "Wednesday 3:00 PM", "Friday 1:00 PM"},
		Location:     "Mental Health Clinic, Suite 305",
		Rating:       4.5,
		Price:        200.0,
	},
	{
		ID:           "7",
		Name:         "Dr. David Lee",
		Specialty:    "Orthopedics",
		Photo:        "https://randomuser.me/api/portraits/men/39.jpg",
		Availability: []string{"Tuesday 2:00 PM", "Wednesday 11:00 AM", "Thursday 2:00 PM", "Friday 9:00 AM"},
		Location:     "Orthopedic Specialists, Floor 2, Room 210",
		Rating:       4.6,
		Price:        160.0,
	},
	{
		ID:           "8",
		Name:         "Dr. Amanda Martinez",
		Specialty:    "Oncology",
		Photo:        "https://randomuser.me/api/portraits/women/50.jpg",
		Availability: []string{"Monday 3:00 PM", "Tuesday 9:00 AM", "Thursday 1:00 PM", "Friday 3:00 PM"},
		Location:     "Cancer Treatment Center, Suite 405",
		Rating:       4.8,
		Price:        190.0,
	},
}
