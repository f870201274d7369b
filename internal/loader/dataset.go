package loader

// DefaultAchievements returns the built-in seed portfolio used for
// demos and first-run population. The records pass import validation
// as-is.
func DefaultAchievements() []Record {
	return []Record{
		{
			Name:        "ServiceNow Certified System Administrator (CSA)",
			Type:        "certification",
			Issuer:      "ServiceNow",
			Description: "Comprehensive ServiceNow platform administration certification demonstrating expertise in system configuration, user management, and platform maintenance with enterprise-level proficiency.",
			Category:    "Platform Administration",
			DateEarned:  "2024-08-15",
		},
		{
			Name:        "ServiceNow Certified Implementation Specialist - ITSM",
			Type:        "certification",
			Issuer:      "ServiceNow",
			Description: "Advanced ITSM implementation certification covering incident, problem, change, and service catalog management with enterprise best practices and strategic alignment.",
			Category:    "ITSM Implementation",
			DateEarned:  "2024-07-22",
		},
		{
			Name:        "AI-Powered ServiceNow Widget Development",
			Type:        "achievement",
			Issuer:      "ServiceNow",
			Description: "Innovative development of AI-enhanced ServiceNow widgets integrating machine learning capabilities for intelligent user experiences and automated workflow optimization.",
			Category:    "Innovation",
			DateEarned:  "2024-09-15",
		},
		{
			Name:        "United States Military Service",
			Type:        "achievement",
			Issuer:      "U.S. Navy",
			Description: "Honorable military service demonstrating commitment to excellence, leadership under pressure, and dedication to serving others with distinction and integrity.",
			Category:    "Service Excellence",
			DateEarned:  "2020-12-20",
		},
		{
			Name:        "Military Leadership Excellence",
			Type:        "achievement",
			Issuer:      "U.S. Navy",
			Description: "Demonstrated exceptional leadership capabilities in high-pressure military environments with focus on team development, mission success, and operational excellence.",
			Category:    "Leadership",
			DateEarned:  "2020-03-15",
		},
		{
			Name:        "Military Technical Training Excellence",
			Type:        "achievement",
			Issuer:      "U.S. Navy",
			Description: "Advanced technical training completion with honors, demonstrating mastery of complex systems, troubleshooting methodologies, and precision under pressure.",
			Category:    "Technical Excellence",
			DateEarned:  "2019-11-08",
		},
		{
			Name:        "CompTIA Security+",
			Type:        "certification",
			Issuer:      "CompTIA",
			Description: "Comprehensive cybersecurity certification covering security principles, risk management, incident response, and enterprise security practices with hands-on validation.",
			Category:    "Security",
			DateEarned:  "2023-10-22",
		},
		{
			Name:        "Project Management Professional (PMP)",
			Type:        "certification",
			Issuer:      "PMI",
			Description: "Advanced project management certification demonstrating expertise across all phases of project lifecycle with emphasis on agile methodologies and stakeholder management.",
			Category:    "Project Management",
			DateEarned:  "2024-06-12",
		},
		{
			Name:        "AWS Cloud Practitioner",
			Type:        "certification",
			Issuer:      "Amazon Web Services",
			Description: "Foundation certification in AWS cloud architecture principles, cost optimization, and best practices for enterprise cloud deployments and migration strategies.",
			Category:    "Cloud Computing",
			DateEarned:  "2024-07-08",
		},
		{
			Name:        "ITIL 4 Foundation",
			Type:        "certification",
			Issuer:      "ITIL",
			Description: "Modern IT service management certification covering ITIL v4 frameworks, value streams, and digital transformation approaches for service excellence.",
			Category:    "Service Management",
			DateEarned:  "2024-04-12",
		},
		{
			Name:        "Veteran Mentorship Leadership",
			Type:        "achievement",
			Issuer:      "Hiring Our Heroes",
			Description: "Award for exceptional mentorship of transitioning veterans in technology careers with documented 90%+ job placement rate and sustained career advancement success.",
			Category:    "Veteran Advocacy",
			DateEarned:  "2024-06-15",
		},
		{
			Name:        "Service to Success Initiative Recognition",
			Type:        "achievement",
			Issuer:      "Veterans in Technology",
			Description: "Recognition for establishing and leading the Service to Success initiative, bridging military experience with civilian technology careers through structured mentorship programs.",
			Category:    "Community Impact",
			DateEarned:  "2024-08-01",
		},
		{
			Name:        "Full-Stack Web Development Portfolio",
			Type:        "achievement",
			Issuer:      "Self-Directed Learning",
			Description: "Comprehensive full-stack development portfolio showcasing modern frameworks, responsive design, API integration, and database management with military precision standards.",
			Category:    "Development",
			DateEarned:  "2024-05-20",
		},
		{
			Name:        "Advanced Python Programming",
			Type:        "achievement",
			Issuer:      "Self-Directed Learning",
			Description: "Advanced Python programming expertise covering automation, data analysis, machine learning integration, and enterprise application development with clean code practices.",
			Category:    "Programming",
			DateEarned:  "2024-03-10",
		},
		{
			Name:        "Cybersecurity Incident Response Specialist",
			Type:        "achievement",
			Issuer:      "ServiceNow",
			Description: "Specialized expertise in cybersecurity incident response using ServiceNow Security Operations platform with real-time threat detection and automated response workflows.",
			Category:    "Security",
			DateEarned:  "2023-12-10",
		},
		{
			Name:        "Multi-Platform AI Integration Mastery",
			Type:        "achievement",
			Issuer:      "Innovation Project",
			Description: "Cutting-edge integration of multiple AI platforms with ServiceNow for intelligent automation, predictive analytics, and enhanced user experiences.",
			Category:    "Innovation",
			DateEarned:  "2024-09-05",
		},
		{
			Name:        "Innovative Solution Development",
			Type:        "achievement",
			Issuer:      "ServiceNow",
			Description: "Recognition for developing innovative ServiceNow solutions that significantly improved operational efficiency, user satisfaction, and automated complex business processes.",
			Category:    "Innovation",
			DateEarned:  "2024-08-30",
		},
		{
			Name:        "Database Administration Expertise",
			Type:        "achievement",
			Issuer:      "Oracle",
			Description: "Advanced database administration capabilities covering performance tuning, backup strategies, security implementation, and enterprise database architecture design.",
			Category:    "Database",
			DateEarned:  "2024-02-08",
		},
		{
			Name:        "Community Technology Advocacy",
			Type:        "achievement",
			Issuer:      "Local Tech Community",
			Description: "Recognition for establishing technology mentorship programs that successfully bridge military and civilian technology careers with measurable community impact.",
			Category:    "Community Leadership",
			DateEarned:  "2024-07-05",
		},
		{
			Name:        "Technology Integration Specialist",
			Type:        "achievement",
			Issuer:      "Enterprise Solutions",
			Description: "Expertise in integrating complex technology systems, API management, data synchronization, and ensuring seamless cross-platform functionality.",
			Category:    "Integration",
			DateEarned:  "2024-04-15",
		},
		{
			Name:        "Bachelor's Degree in Information Technology",
			Type:        "achievement",
			Issuer:      "Accredited University",
			Description: "Comprehensive information technology education covering software engineering, network administration, cybersecurity, and project management with academic excellence.",
			Category:    "Education",
			DateEarned:  "2023-05-15",
		},
		{
			Name:        "Associate Degree in Computer Science",
			Type:        "achievement",
			Issuer:      "Community College",
			Description: "Foundation computer science education covering programming fundamentals, algorithms, data structures, and system administration with honors recognition.",
			Category:    "Education",
			DateEarned:  "2021-12-18",
		},
		{
			Name:        "Advanced AI and Machine Learning Studies",
			Type:        "achievement",
			Issuer:      "Self-Directed Learning",
			Description: "Comprehensive study of artificial intelligence, machine learning algorithms, neural networks, and practical implementation in enterprise environments.",
			Category:    "AI/ML",
			DateEarned:  "2024-04-20",
		},
		{
			Name:        "Exceptional Work Ethic",
			Type:        "achievement",
			Issuer:      "Professional Recognition",
			Description: "Consistent demonstration of exceptional work ethic, attention to detail, reliability, and commitment to excellence rooted in military service values.",
			Category:    "Professional Excellence",
			DateEarned:  "2024-01-01",
		},
		{
			Name:        "Continuous Learning Commitment",
			Type:        "achievement",
			Issuer:      "Self-Assessment",
			Description: "Demonstrated commitment to continuous learning through regular certification updates, technology exploration, and professional development initiatives.",
			Category:    "Professional Development",
			DateEarned:  "2024-09-01",
		},
		{
			Name:        "DevOps and CI/CD Pipeline Expertise",
			Type:        "achievement",
			Issuer:      "Technology Practice",
			Description: "Advanced DevOps practices including CI/CD pipeline development, automated testing, deployment strategies, and infrastructure as code implementation.",
			Category:    "DevOps",
			DateEarned:  "2024-03-25",
		},
		{
			Name:        "Microsoft Azure Fundamentals",
			Type:        "certification",
			Issuer:      "Microsoft",
			Description: "Azure cloud platform fundamentals covering cloud concepts, core services, security, privacy, compliance, and pricing models for enterprise solutions.",
			Category:    "Cloud Computing",
			DateEarned:  "2024-01-30",
		},
		{
			Name:        "Salesforce Administrator Certification",
			Type:        "certification",
			Issuer:      "Salesforce",
			Description: "Salesforce platform administration certification covering user management, data management, security, automation, and custom application development.",
			Category:    "CRM Administration",
			DateEarned:  "2024-02-14",
		},
	}
}
