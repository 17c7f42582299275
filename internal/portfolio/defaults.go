package portfolio

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var (
	DefaultProfile = Profile{
		Name:  "Cade Farragut",
		Title: "Full Stack Developer",
		Biography: "Passionate developer with expertise in building modern web applications. " +
			"Focused on creating elegant solutions to complex problems with clean, maintainable code.",
		ResumeURL:       "/resources/resume.pdf",
		LinkedInURL:     "https://www.linkedin.com/in/cadefarragut/",
		GitHubURL:       "https://github.com/cadefarragut",
		Email:           "cade_farragut@yahoo.com",
		ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=portfolio",
	}

	DefaultProjects = []Project{
		{
			ID:           "1",
			Title:        "Automated Bartender",
			Description:  "An Automated Bartender built with an Allen Bradley PLC and HMI Touchscreen Interface.",
			Technologies: []string{"Ladder Logic", "Studio 5000", "EtherNet/IP"},
			ImageURL:     "/images/bartender.jpg",
			DemoURL:      "https://github.com/cadefarragut/Automated-Bartender",
			RepoURL:      "https://github.com/cadefarragut/Automated-Bartender",
		},
		{
			ID:    "2",
			Title: "LeetifyTracker",
			Description: "A Discord bot that automatically tracks members' monthly activity and " +
				"generates a dynamic leaderboard to showcase top performers.",
			Technologies: []string{"TypeScript", "Leetify API", "JSON"},
			ImageURL:     "/images/discord-bot.png",
			DemoURL:      "https://github.com/cadefarragut/LeetifyDiscordBot",
			RepoURL:      "https://github.com/cadefarragut/LeetifyDiscordBot",
		},
		{
			ID:           "3",
			Title:        "Personal Portfolio Website",
			Description:  "A responsive portfolio website built with Go, Gin and HTMX to showcase my projects and skills.",
			Technologies: []string{"Go", "Gin", "HTMX"},
			ImageURL:     "/images/portfolio.jpg",
			DemoURL:      "https://cadefarragut.com",
			RepoURL:      "https://github.com/cadefarragut/PortfolioV2",
		},
	}

	DefaultSkills = []TechSkill{
		{Name: "C", Icon: devicon + "c/c-original.svg", Proficiency: 90, Category: CategoryLanguage},
		{Name: "C++", Icon: devicon + "cplusplus/cplusplus-original.svg", Proficiency: 85, Category: CategoryLanguage},
		{Name: "Python", Icon: devicon + "python/python-original.svg", Proficiency: 75, Category: CategoryLanguage},
		{Name: "JIRA", Icon: devicon + "jira/jira-original.svg", Proficiency: 65, Category: CategoryTools},
		{Name: "Postman", Icon: devicon + "postman/postman-original.svg", Proficiency: 65, Category: CategoryTools},
		{Name: "Git", Icon: devicon + "git/git-original.svg", Proficiency: 85, Category: CategoryTools},
		{Name: "Linux", Icon: devicon + "linux/linux-original.svg", Proficiency: 85, Category: CategoryTools},
		{Name: "HTML", Icon: devicon + "html5/html5-original.svg", Proficiency: 80, Category: CategoryLanguage},
		{Name: "CSS", Icon: devicon + "css3/css3-original.svg", Proficiency: 80, Category: CategoryLanguage},
		{Name: "React", Icon: devicon + "react/react-original.svg", Proficiency: 80, Category: CategoryFramework},
	}

	DefaultExperience = []Experience{
		{
			Role:    "Senior Developer",
			Company: "Company Name",
			Start:   "Jan 2020",
			End:     "Present",
			Summary: "Led development of key features for enterprise applications. " +
				"Mentored junior developers and implemented best practices for code quality and performance optimization.",
		},
		{
			Role:    "Web Developer",
			Company: "Previous Company",
			Start:   "Mar 2017",
			End:     "Dec 2019",
			Summary: "Developed responsive web applications using modern JavaScript frameworks. " +
				"Collaborated with design team to implement UI/UX improvements and optimize site performance.",
		},
	}
)
