package model

// SeedActivities returns a fresh copy of the Mergington High School catalog
// the registry starts with.
func SeedActivities() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball league and practice",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Tennis training and friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"jessica@mergington.edu", "ryan@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing, and visual arts",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu"},
		},
		{
			Name:            "Music Ensemble",
			Description:     "Orchestra and ensemble performance",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Competitive debate and public speaking",
			Schedule:        "Mondays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Explore scientific concepts through experiments and projects",
			Schedule:        "Fridays, 4:00 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
