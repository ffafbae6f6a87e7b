package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"resumematcher/backend/internal/config"
	"resumematcher/backend/internal/models"
	"resumematcher/backend/internal/repositories"
)

// Seeds the jobs table with a starter set of postings so the search and
// domain-filter endpoints have data to serve on a fresh database.
func main() {
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)

	jobs := []models.Job{
		{
			Title:    "Senior Full Stack Developer",
			Company:  "TechCorp Inc.",
			Location: "San Francisco, CA",
			Domain:   "Fullstack",
			JobText:  "We are looking for a Senior Full Stack Developer with 5+ years of experience in React, Node.js, Python, and MongoDB. The ideal candidate should have experience with cloud platforms like AWS and modern development practices including CI/CD, microservices architecture, and agile methodologies.",
			RequiredSkills: models.StringList{
				"React", "Node.js", "Python", "MongoDB", "AWS",
				"Docker", "Kubernetes", "REST API", "GraphQL", "TypeScript",
			},
		},
		{
			Title:    "Cloud Solutions Architect",
			Company:  "CloudTech Solutions",
			Location: "Austin, TX",
			Domain:   "Cloud",
			JobText:  "Seeking a Cloud Solutions Architect to design and implement scalable cloud infrastructure solutions. Requirements include expertise in AWS, Azure, Terraform, Kubernetes, and experience with DevOps practices. Strong understanding of security, monitoring, and cost optimization is essential.",
			RequiredSkills: models.StringList{
				"AWS", "Azure", "Terraform", "Kubernetes", "Docker",
				"Python", "Linux", "Security", "Monitoring", "Cost Optimization",
			},
		},
		{
			Title:    "Data Scientist",
			Company:  "DataInsights Ltd.",
			Location: "New York, NY",
			Domain:   "Data",
			JobText:  "Join our data science team to build machine learning models and analyze large datasets. We need someone with strong Python skills, experience with TensorFlow/PyTorch, pandas, scikit-learn, and SQL. Knowledge of statistical analysis, data visualization, and cloud platforms is required.",
			RequiredSkills: models.StringList{
				"Python", "TensorFlow", "PyTorch", "pandas", "scikit-learn",
				"SQL", "Statistics", "Data Visualization", "AWS", "Jupyter",
			},
		},
		{
			Title:    "DevOps Engineer",
			Company:  "InfraTech Systems",
			Location: "Seattle, WA",
			Domain:   "DevOps",
			JobText:  "We are hiring a DevOps Engineer to manage our infrastructure and deployment pipelines. The role requires expertise in Jenkins, GitLab CI, Docker, Kubernetes, monitoring tools, and scripting languages. Experience with cloud platforms and infrastructure as code is essential.",
			RequiredSkills: models.StringList{
				"Jenkins", "GitLab CI", "Docker", "Kubernetes", "Python",
				"Bash", "Terraform", "AWS", "Monitoring", "Linux",
			},
		},
	}

	for i := range jobs {
		jobs[i].ID = uuid.New()
		jobs[i].CreatedAt = time.Now()
		if err := jobRepo.Create(&jobs[i]); err != nil {
			log.Fatalf("❌ Failed to seed job %q: %v", jobs[i].Title, err)
		}
		log.Printf("✅ Seeded job %q (%s)\n", jobs[i].Title, jobs[i].ID)
	}

	log.Printf("✅ Seeded %d jobs\n", len(jobs))
}
