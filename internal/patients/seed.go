package patients

import (
	"time"

	"github.com/vedicure/vedacare/internal/therapy"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func past(t therapy.Type, date time.Time, review string, rating int) Session {
	return Session{
		Status:      StatusPast,
		TherapyType: t,
		Date:        date,
		Feedback:    &Feedback{Review: review, Rating: rating},
	}
}

// SeedRoster returns the demo roster the dashboard ships with.
func SeedRoster() []*Patient {
	return []*Patient{
		{
			ID: 1, Name: "Aarav Sharma", Condition: "Chronic Back Pain",
			WellnessScore: 75, RegisteredOn: day(2025, time.August, 1),
			Milestones: []Milestone{
				{Description: "Reduced Morning Stiffness", Completed: true},
				{Description: "Improved Sleep Quality", Completed: true},
				{Description: "Pain-free for 24h", Completed: false},
			},
			Sessions: []Session{
				past(therapy.KatiVasti, day(2025, time.July, 11), "Initial consultation was thorough. The prescribed therapy seems promising.", 4),
				past(therapy.Abhyanga, day(2025, time.July, 18), "Very relaxing, but the back pain relief was temporary.", 3),
				past(therapy.Pizhichil, day(2025, time.August, 5), "Felt a noticeable improvement in flexibility after this session.", 4),
				past(therapy.KatiVasti, day(2025, time.August, 12), "This was the best session so far. Significant pain reduction.", 5),
				past(therapy.Abhyanga, day(2025, time.September, 12), "Felt very relaxed, the pain was noticeably less for a few days.", 5),
				past(therapy.KatiVasti, day(2025, time.September, 19), "Good session, targeted the lower back well.", 4),
				{Status: StatusOngoing, TherapyType: therapy.Pizhichil, Date: day(2025, time.September, 26)},
				{Status: StatusFuture, TherapyType: therapy.Abhyanga, Date: day(2025, time.October, 3)},
			},
		},
		{
			ID: 2, Name: "Priya Patel", Condition: "Migraine",
			WellnessScore: 60, RegisteredOn: day(2025, time.August, 15),
			Milestones: []Milestone{
				{Description: "Fewer than 2 migraines/week", Completed: true},
				{Description: "Reduced dependency on pain-killers", Completed: false},
			},
			Sessions: []Session{
				past(therapy.Consultation, day(2025, time.July, 20), "Doctor was very understanding. Hopeful for the treatment.", 5),
				past(therapy.Shirodhara, day(2025, time.July, 27), "A unique experience. Felt a sense of calm during the therapy.", 4),
				past(therapy.Nasya, day(2025, time.August, 10), "This was a bit uncomfortable, but I had no migraine for a week after.", 4),
				past(therapy.Shirodhara, day(2025, time.August, 17), "Second session was even better. It is helping with the stress.", 5),
				past(therapy.Shirodhara, day(2025, time.September, 12), "The headache frequency has definitely decreased. Very calming experience.", 5),
				{Status: StatusOngoing, TherapyType: therapy.Shirodhara, Date: day(2025, time.September, 26)},
				{Status: StatusFuture, TherapyType: therapy.Nasya, Date: day(2025, time.October, 4)},
			},
		},
		{
			ID: 3, Name: "Rohan Desai", Condition: "Stress & Anxiety",
			WellnessScore: 68, RegisteredOn: day(2025, time.September, 1),
			Milestones: []Milestone{
				{Description: "Reported better sleep", Completed: true},
				{Description: "Lowered daily stress levels", Completed: false},
			},
			Sessions: []Session{
				past(therapy.Abhyanga, day(2025, time.August, 25), "The massage was incredibly relaxing and helped clear my mind.", 5),
				past(therapy.Shirodhara, day(2025, time.September, 20), "Helped me relax, but the effect was short-lived.", 3),
				{Status: StatusFuture, TherapyType: therapy.Abhyanga, Date: day(2025, time.October, 5)},
			},
		},
		{
			ID: 4, Name: "Sunita Nair", Condition: "Arthritis",
			WellnessScore: 82, RegisteredOn: day(2025, time.August, 20),
			Milestones: []Milestone{
				{Description: "Increased joint mobility", Completed: true},
				{Description: "Reduced inflammation markers", Completed: true},
			},
			Sessions: []Session{
				past(therapy.Pizhichil, day(2025, time.September, 18), "Significant relief in joint stiffness. Very professional service.", 4),
				{Status: StatusOngoing, TherapyType: therapy.KatiVasti, Date: day(2025, time.September, 28)},
			},
		},
		{
			ID: 5, Name: "Vikram Mehta", Condition: "Insomnia",
			WellnessScore: 55, RegisteredOn: day(2025, time.September, 5),
			Milestones: []Milestone{
				{Description: "Fell asleep faster", Completed: false},
				{Description: "Reduced nighttime awakenings", Completed: false},
			},
			Sessions: []Session{
				past(therapy.Abhyanga, day(2025, time.September, 22), "It was okay, but I didn't sleep much better that night.", 3),
				{Status: StatusFuture, TherapyType: therapy.Shirodhara, Date: day(2025, time.October, 6)},
			},
		},
	}
}
