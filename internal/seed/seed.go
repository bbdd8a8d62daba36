package seed

import "portfolio/internal/model"

// Package seed holds the content bundled with the application. These
// entries render on the public site even when the admin has added nothing,
// are never written to the content store, and cannot be deleted. Store
// records carrying the isDefault flag are filtered during merge so a
// legacy copy of a seed entry cannot double-count.

// Merge unions seed defaults with store-managed entries: defaults first,
// then every record whose isDefault marker is unset. Pure function.
func Merge[T any](defaults []T, records []T, isDefault func(T) bool) []T {
	out := make([]T, 0, len(defaults)+len(records))
	out = append(out, defaults...)
	for _, rec := range records {
		if !isDefault(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Experiences returns the default resume experience entries.
func Experiences() []model.Experience {
	return []model.Experience{
		{
			Period:      "June 2023 - Present",
			Position:    "Full Stack Developer",
			Company:     "Freelance",
			Description: "Developing and maintaining web applications for various clients using modern technologies like React, Node.js, and MongoDB. Successfully delivered scalable solutions that improved client business operations and user engagement.",
			IsDefault:   true,
		},
		{
			Period:      "January 2022 - May 2023",
			Position:    "Frontend Developer Intern",
			Company:     "Tech Solutions Ltd",
			Description: "Worked on building responsive user interfaces using React and TypeScript. Collaborated with the design team to implement pixel-perfect designs and improved website performance by 40%.",
			IsDefault:   true,
		},
	}
}

// Education returns the default education entries.
func Education() []model.Education {
	return []model.Education{
		{
			Year:        "October 2021 - August 2025",
			Degree:      "BSc. Computer Science",
			Institution: "Nnamdi Azikiwe University (UNIZIK)",
			Description: "Graduated with comprehensive knowledge in computer science fundamentals, including algorithms, data structures, software engineering, and programming languages.",
			IsDefault:   true,
		},
		{
			Year:        "September 2015 - September 2021",
			Degree:      "Secondary School Education",
			Institution: "Basic Steps Int'l School, Fegge Onitsha (BSIS)",
			Description: "Science department. Served as Deputy Senior Prefect and Regulatory Prefect, and led the Junior Engineer Technicians Society.",
			IsDefault:   true,
		},
		{
			Year:        "September 2010 - August 2015",
			Degree:      "Primary School Education",
			Institution: "The Light of God International School, Fegge, Onitsha",
			Description: "Core foundation in Mathematics, English and Science.",
			IsDefault:   true,
		},
	}
}

// Skills returns the default skill entries.
func Skills() []model.Skill {
	return []model.Skill{
		{Name: "JavaScript", Icon: "bx bxl-javascript", IsDefault: true},
		{Name: "TypeScript", Icon: "bx bxl-typescript", IsDefault: true},
		{Name: "React", Icon: "bx bxl-react", IsDefault: true},
		{Name: "Node.js", Icon: "bx bxl-nodejs", IsDefault: true},
		{Name: "MongoDB", Icon: "bx bxl-mongodb", IsDefault: true},
		{Name: "Python", Icon: "bx bxl-python", IsDefault: true},
		{Name: "Git", Icon: "bx bxl-git", IsDefault: true},
		{Name: "HTML5", Icon: "bx bxl-html5", IsDefault: true},
		{Name: "CSS3", Icon: "bx bxl-css3", IsDefault: true},
		{Name: "Firebase", Icon: "bx bxl-firebase", IsDefault: true},
	}
}

// Projects returns the default portfolio projects.
func Projects() []model.Project {
	return []model.Project{
		{
			Title:       "Portfolio Website",
			Description: "A modern, responsive portfolio website with a dynamic admin dashboard, blog management, and contact form integration.",
			Technologies: []string{
				"React", "Firebase", "CSS3",
			},
			Images: []string{
				"/assets/images/1.png",
				"/assets/images/2.png",
				"/assets/images/3.png",
				"/assets/images/4.png",
			},
			LiveURL:   "https://yourportfolio.com",
			GithubURL: "https://github.com/ChidexWorld/portfolio-v2",
			IsDefault: true,
		},
		{
			Title:       "E-Commerce Platform",
			Description: "A full-stack e-commerce solution with product management, shopping cart, and secure payment integration.",
			Technologies: []string{
				"React", "Node.js", "MongoDB", "Stripe",
			},
			Images: []string{
				"/assets/images/shop-1.png",
				"/assets/images/shop-2.png",
			},
			GithubURL: "https://github.com/ChidexWorld",
			IsDefault: true,
		},
	}
}

// SocialLinks returns the default social links, ordered.
func SocialLinks() []model.SocialLink {
	return []model.SocialLink{
		{Name: "GitHub", URL: "https://github.com/ChidexWorld/", Icon: "bxl-github", Order: 1, IsDefault: true},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/in/chidexstanley/", Icon: "bxl-linkedin", Order: 2, IsDefault: true},
		{Name: "Discord", URL: "https://discord.com/users/1217712464347533363", Icon: "bxl-discord-alt", Order: 3, IsDefault: true},
		{Name: "WhatsApp", URL: "https://wa.me/2349024308888", Icon: "bxl-whatsapp-square", Order: 4, IsDefault: true},
	}
}
