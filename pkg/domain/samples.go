package domain

import "strings"

// sampleIDPrefix marks the built-in demonstration profiles. They are shown
// when the catalog would otherwise be empty, are never persisted, and can
// never be edited or deleted.
const sampleIDPrefix = "mock-"

// IsSampleID reports whether id belongs to the built-in sample set.
func IsSampleID(id string) bool {
	return strings.HasPrefix(id, sampleIDPrefix)
}

// SampleByID returns the sample profile with the given id, if any.
func SampleByID(id string) (Profile, bool) {
	for _, p := range Samples() {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Samples returns the fixed demonstration set. Callers own the returned
// slice; the profiles inside share no state between calls.
func Samples() []Profile {
	return []Profile{
		{
			ID:       "mock-1",
			Template: string(TemplateModern),
			Name:     "Emma Foster",
			Title:    "Full Stack Developer",
			Tagline:  "Building the future with clean code",
			Bio: "Passionate developer with 5+ years of experience building scalable web " +
				"applications. I specialize in React, Node.js, and cloud technologies. I love " +
				"solving complex problems and creating user-friendly solutions that make a real impact.",
			Email:    "emma.foster@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Socials: []Social{
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/emmafoster"},
				{Platform: "GitHub", URL: "https://github.com/emmafoster"},
				{Platform: "Twitter", URL: "https://twitter.com/emmafoster"},
			},
			Skills: []string{"React", "Node.js", "TypeScript", "AWS", "MongoDB", "GraphQL", "Docker", "Kubernetes"},
			Services: []Service{
				{Title: "Web Development", Description: "Full-stack web application development using modern technologies like React, Node.js, and cloud platforms."},
				{Title: "API Development", Description: "RESTful and GraphQL API development with proper authentication, validation, and documentation."},
				{Title: "Cloud Solutions", Description: "Cloud architecture and deployment using AWS, Docker, and Kubernetes for scalable applications."},
			},
			Portfolio: []Project{
				{Title: "E-commerce Platform", Description: "A full-featured e-commerce platform built with React, Node.js, and MongoDB. Features include user authentication, payment processing, and admin dashboard."},
				{Title: "Task Management App", Description: "A collaborative task management application with real-time updates, built using React, Socket.io, and PostgreSQL."},
				{Title: "Analytics Dashboard", Description: "A comprehensive analytics dashboard for tracking business metrics, built with React, D3.js, and Express.js."},
			},
			Testimonials: []Testimonial{
				{Name: "John Smith", Role: "CTO at TechCorp", Quote: "Emma delivered an exceptional web application that exceeded our expectations. Her attention to detail and technical expertise are outstanding."},
				{Name: "Sarah Johnson", Role: "Product Manager at StartupXYZ", Quote: "Working with Emma was a pleasure. She understood our requirements perfectly and delivered a robust solution on time."},
			},
			BlogTitle:   "Tech Insights",
			BlogSummary: "Sharing insights about web development, cloud technologies, and industry best practices.",
			ContactMsg:  "Let's work together to bring your ideas to life! I'm always excited to take on new challenges and create amazing digital experiences.",
			ContactMail: "emma.foster@example.com",
			ContactTel:  "+1 (555) 123-4567",
			Experience:  "5+ years",
			Projects:    "25+",
			Rating:      4.8,
		},
		{
			ID:       "mock-2",
			Template: string(TemplateModern),
			Name:     "Jennifer Park",
			Title:    "Software Engineer",
			Tagline:  "Crafting robust backend solutions",
			Bio: "Experienced software engineer with 4+ years specializing in backend systems " +
				"and API development. I focus on performance optimization and scalable architecture " +
				"to build systems that can handle millions of users.",
			Email:    "jennifer.park@example.com",
			Phone:    "+1 (555) 987-6543",
			Location: "Seattle, WA",
			Socials: []Social{
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/jenniferpark"},
				{Platform: "GitHub", URL: "https://github.com/jenniferpark"},
			},
			Skills: []string{"Python", "Java", "PostgreSQL", "Docker", "Kubernetes"},
			Services: []Service{
				{Title: "Backend Development", Description: "Design and implementation of reliable backend services with clear API contracts and strong test coverage."},
				{Title: "Database Design", Description: "Schema design, query tuning, and migration planning for relational databases under real production load."},
				{Title: "Infrastructure Automation", Description: "Containerized deployment pipelines with Docker and Kubernetes, from local dev parity to production rollout."},
			},
			Portfolio: []Project{
				{Title: "Payments Service", Description: "A high-throughput payments processing service with idempotent retries and full audit logging."},
				{Title: "Search Indexer", Description: "An incremental indexing pipeline keeping a product search cluster in sync with the catalog database."},
				{Title: "Rate Limiter", Description: "A distributed rate limiting library adopted across a dozen internal services."},
			},
			Testimonials: []Testimonial{
				{Name: "Dan Miller", Role: "Engineering Manager at CloudBase", Quote: "Jennifer rebuilt our most fragile service into the most dependable one. Her systems keep running when everything else breaks."},
			},
			ContactMsg:  "Have a backend problem that keeps you up at night? Let's talk.",
			ContactMail: "jennifer.park@example.com",
			ContactTel:  "+1 (555) 987-6543",
			Experience:  "4+ years",
			Projects:    "18+",
			Rating:      4.6,
		},
		{
			ID:       "mock-3",
			Template: string(TemplateCreative),
			Name:     "Kevin Brown",
			Title:    "UI Designer",
			Tagline:  "Designing experiences that matter",
			Bio: "Creative UI designer with a passion for user-centered design and beautiful " +
				"interfaces. I create designs that are both functional and visually appealing.",
			Email:    "kevin.brown@example.com",
			Phone:    "+1 (555) 456-7890",
			Location: "New York, NY",
			Socials: []Social{
				{Platform: "Dribbble", URL: "https://dribbble.com/kevinbrown"},
				{Platform: "Behance", URL: "https://behance.net/kevinbrown"},
			},
			Skills: []string{"Figma", "Adobe XD", "Sketch", "Prototyping", "User Research"},
			Services: []Service{
				{Title: "Product Design", Description: "End-to-end product design from discovery workshops through polished, developer-ready handoff."},
				{Title: "Design Systems", Description: "Component libraries and design tokens that keep large products visually consistent."},
				{Title: "UX Audits", Description: "Heuristic reviews and usability testing that turn vague friction into a prioritized fix list."},
			},
			Portfolio: []Project{
				{Title: "Banking App Redesign", Description: "A ground-up redesign of a consumer banking app, lifting task completion rates by 40%."},
				{Title: "Design System Atlas", Description: "A cross-platform design system serving web, iOS, and Android product teams."},
				{Title: "Onboarding Flow Study", Description: "A research-driven onboarding redesign that halved first-week churn."},
			},
			Testimonials: []Testimonial{
				{Name: "Maria Lopez", Role: "Founder at Finly", Quote: "Kevin understands users better than they understand themselves. Our app finally feels effortless."},
			},
			BlogTitle:   "Pixels & People",
			BlogSummary: "Notes on design systems, usability research, and the craft of interface design.",
			ContactMsg:  "Let's make something people love to use.",
			Experience:  "3+ years",
			Projects:    "30+",
			Rating:      4.7,
		},
		{
			ID:       "mock-4",
			Template: string(TemplateModern),
			Name:     "Lisa Wang",
			Title:    "AI Engineer",
			Tagline:  "Bringing AI to life",
			Bio: "AI engineer focused on machine learning and data science. I develop intelligent " +
				"systems that help businesses make data-driven decisions.",
			Email:    "lisa.wang@example.com",
			Phone:    "+1 (555) 321-0987",
			Location: "Austin, TX",
			Socials: []Social{
				{Platform: "GitHub", URL: "https://github.com/lisawang"},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/lisawang"},
			},
			Skills: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Data Science"},
			Services: []Service{
				{Title: "ML Consulting", Description: "Scoping, prototyping, and shipping machine learning features that actually move product metrics."},
				{Title: "Model Deployment", Description: "Production model serving with monitoring, drift detection, and safe rollback."},
				{Title: "Data Strategy", Description: "Turning messy data estates into pipelines a model can learn from."},
			},
			Portfolio: []Project{
				{Title: "Demand Forecaster", Description: "A forecasting system reducing inventory waste for a national retailer by 18%."},
				{Title: "Support Triage Model", Description: "An intent classifier routing support tickets with 94% accuracy."},
				{Title: "Anomaly Radar", Description: "Streaming anomaly detection over operational metrics with explainable alerts."},
			},
			Testimonials: []Testimonial{
				{Name: "Priya Nair", Role: "VP Data at RetailCo", Quote: "Lisa shipped in three months what our previous vendor promised for a year. The forecaster paid for itself by quarter two."},
			},
			ContactMsg:  "Curious whether machine learning fits your problem? Ask me before you hire a team for it.",
			ContactMail: "lisa.wang@example.com",
			Experience:  "6+ years",
			Projects:    "12+",
			Rating:      4.9,
		},
	}
}
