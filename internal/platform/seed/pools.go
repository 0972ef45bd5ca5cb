package seed

import "github.com/wellness/wellness/internal/domain/identity"

// Sample pools for synthetic data.
var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
		"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
		"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
		"Timothy", "Deborah", "Ronald", "Stephanie", "Jason", "Rebecca", "Edward", "Sharon",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas", "Taylor",
		"Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris", "Sanchez",
		"Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
		"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	}

	specializations = []string{
		"General Practice", "Cardiology", "Pediatrics", "Dermatology", "Orthopedics",
		"Neurology", "Psychiatry", "Endocrinology", "Gastroenterology", "Pulmonology",
	}

	allergies = []string{
		"Penicillin", "Peanuts", "Shellfish", "Dairy", "Eggs", "Soy", "Wheat", "Tree Nuts",
		"Latex", "Aspirin", "Ibuprofen", "Codeine", "Sulfa Drugs", "Dust Mites", "Pollen",
	}

	medications = []identity.Medication{
		{Name: "Metformin", Dosage: "500mg", Frequency: "Twice daily"},
		{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily"},
		{Name: "Atorvastatin", Dosage: "20mg", Frequency: "Once daily"},
		{Name: "Levothyroxine", Dosage: "75mcg", Frequency: "Once daily"},
		{Name: "Amlodipine", Dosage: "5mg", Frequency: "Once daily"},
		{Name: "Omeprazole", Dosage: "20mg", Frequency: "Once daily"},
		{Name: "Albuterol", Dosage: "90mcg", Frequency: "As needed"},
		{Name: "Metoprolol", Dosage: "50mg", Frequency: "Twice daily"},
	}

	conditions = []string{
		"Hypertension", "Diabetes Type 2", "Asthma", "Arthritis", "High Cholesterol",
		"Hypothyroidism", "GERD", "Anxiety", "Depression", "Migraine", "Sleep Apnea",
		"Osteoporosis", "COPD", "Heart Disease", "Kidney Disease",
	}

	testTypes = []string{
		"Blood Pressure", "Cholesterol", "Blood Glucose", "Complete Blood Count",
		"Lipid Panel", "Thyroid Function", "Liver Function", "Kidney Function",
		"Mammogram", "Colonoscopy", "Pap Smear", "Prostate Screening", "Bone Density",
	}

	immunizations = []string{
		"Flu Shot", "COVID-19 Vaccine", "Tetanus", "Hepatitis B", "MMR", "Varicella",
		"Pneumococcal", "Shingles", "HPV", "Meningococcal",
	}

	symptoms = []string{
		"Headache", "Fever", "Cough", "Fatigue", "Nausea", "Dizziness", "Chest Pain",
		"Shortness of Breath", "Joint Pain", "Muscle Aches", "Sore Throat", "Runny Nose",
		"Abdominal Pain", "Back Pain", "Insomnia", "Anxiety", "Rash", "Swelling",
	}

	advisoryTexts = []string{
		"Please ensure you take your medication with food to avoid stomach upset.",
		"Remember to monitor your blood pressure daily and record the readings.",
		"It's important to stay hydrated, especially during hot weather.",
		"Consider increasing your daily physical activity gradually.",
		"Make sure to get at least 7-8 hours of sleep each night.",
		"Follow up with your next appointment in 3 months.",
		"Continue monitoring your blood sugar levels as discussed.",
		"Remember to take your vitamins with breakfast each morning.",
		"Avoid foods high in sodium to help manage your blood pressure.",
		"Keep a food diary to track any potential allergy triggers.",
	}

	advisoryTags = []string{"medication", "lifestyle", "follow-up", "urgent"}

	medicationReminderTexts = []string{
		"Take Metformin with breakfast",
		"Take your blood pressure medication",
		"Time for your daily vitamins",
		"Don't forget your evening medication",
		"Take your cholesterol medication",
	}

	waterReminderTexts = []string{
		"Drink a glass of water",
		"Stay hydrated - drink water",
		"Time for your water break",
		"Remember to drink water",
		"Hydration reminder",
	}

	emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "example.com"}

	sexes = []string{"male", "female", "other"}

	bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

	relationships = []string{"Spouse", "Parent", "Sibling", "Friend", "Child"}
)
