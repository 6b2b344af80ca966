package profile

// Education is one earned degree.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Experience is one clinical posting.
type Experience struct {
	Role     string `json:"role"`
	Clinic   string `json:"clinic"`
	Duration string `json:"duration"`
}

// Award is one professional recognition.
type Award struct {
	Name string `json:"name"`
	Year string `json:"year"`
}

// Publication is one published study.
type Publication struct {
	Title   string `json:"title"`
	Journal string `json:"journal"`
	Year    string `json:"year"`
}

// Clinic holds the practice's contact details.
type Clinic struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}

// Profile is the practitioner's public professional profile.
type Profile struct {
	Name           string        `json:"name"`
	Specialization string        `json:"specialization"`
	Bio            string        `json:"bio"`
	Education      []Education   `json:"education"`
	Experience     []Experience  `json:"experience"`
	Awards         []Award       `json:"awards"`
	Publications   []Publication `json:"publications"`
	Clinic         Clinic        `json:"clinic"`
}

// Default returns the clinic's resident practitioner profile.
func Default() Profile {
	return Profile{
		Name:           "Dr. Anjali Verma",
		Specialization: "Panchakarma Specialist",
		Bio: "Dr. Anjali Verma is a dedicated Ayurvedic practitioner with over 15 years of experience " +
			"in holistic healing and Panchakarma therapy. She is committed to providing personalized care " +
			"and empowering her patients to achieve optimal health and well-being through traditional " +
			"Ayurvedic wisdom combined with modern diagnostic approaches.",
		Education: []Education{
			{Degree: "B.A.M.S.", Institution: "All India Institute of Ayurveda (AIIA), Delhi", Year: "2008"},
			{Degree: "M.D. (Panchakarma)", Institution: "Banaras Hindu University, Varanasi", Year: "2011"},
		},
		Experience: []Experience{
			{Role: "Senior Consultant", Clinic: "AyurHeal Wellness Center, Pune", Duration: "2015 - Present"},
			{Role: "Panchakarma Specialist", Clinic: "Kerala Ayurveda Ltd, Aluva", Duration: "2011 - 2015"},
		},
		Awards: []Award{
			{Name: "Charaka Award for Excellence in Ayurvedic Practice", Year: "2023"},
			{Name: "Young Achiever in Ayurveda", Year: "2018"},
		},
		Publications: []Publication{
			{Title: "The Efficacy of Vasti Karma in Lumbar Spondylosis", Journal: "Journal of Ayurveda and Integrative Medicine", Year: "2022"},
			{Title: "A Clinical Study on Nasya in the Management of Migraine", Journal: "International Journal of Ayurvedic Medicine", Year: "2019"},
		},
		Clinic: Clinic{
			Name:    "Vedicure Clinic",
			Address: "123 Wellness Lane, Koregaon Park, Pune, Maharashtra 411001",
			Phone:   "+91 98765 43210",
			Hours:   "Mon - Sat: 9:00 AM - 6:00 PM",
		},
	}
}
