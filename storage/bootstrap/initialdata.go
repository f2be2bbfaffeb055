package bootstrap

import (
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/user"
)

// defaultUsers returns the accounts every fresh installation starts with.
func defaultUsers() []user.User {
	return []user.User{
		{
			ID:       "u1",
			Name:     "Admin User",
			Email:    "admin@learn.hub",
			Password: "password",
			Role:     user.RoleAdmin,
			Bio:      "Senior Educator with 10 years experience.",
		},
		{
			ID:       "u2",
			Name:     "Jane Student",
			Email:    "student@learn.hub",
			Password: "password",
			Role:     user.RoleStudent,
			Bio:      "Eager learner specializing in frontend.",
		},
	}
}

// defaultCourses returns the default course catalog. Reseeding is
// append-only: a stored course with a matching id is never overwritten.
func defaultCourses() []course.Course {
	return []course.Course{
		{
			ID:           "c1",
			Title:        "Advanced React Patterns",
			Description:  "Master hooks, context, and performance optimization.",
			Category:     "Development",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l1", Title: "Welcome & Setup", Type: course.TypeVideo,
					Video: &course.VideoContent{URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Duration: "10:00"}},
				{ID: "l2", Title: "Understanding Hooks", Type: course.TypeText,
					Text: &course.TextContent{Body: "Hooks let you use state and other React features without writing a class..."}},
				{ID: "a1", Title: "Build a Custom Hook", Type: course.TypeAssignment,
					Assignment: &course.AssignmentContent{Description: "Create a useFetch hook that handles loading and errors. Submit the GitHub Gist link."}},
			},
		},
		{
			ID:           "c2",
			Title:        "UI/UX Fundamentals",
			Description:  "Learn color theory, typography, and layout design.",
			Category:     "Design",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l3", Title: "Color Theory", Type: course.TypeText,
					Text: &course.TextContent{Body: "Color theory is a practical combination of art and science..."}},
				{ID: "a2", Title: "Redesign a Login Page", Type: course.TypeAssignment,
					Assignment: &course.AssignmentContent{Description: "Take a screenshot of a bad login page and redesign it using Figma."}},
			},
		},
		{
			ID:           "c3",
			Title:        "Data Science Introduction",
			Description:  "Analyze data using Python, Pandas, and Matplotlib.",
			Category:     "Data Science",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l4", Title: "Python Basics", Type: course.TypeText,
					Text: &course.TextContent{Body: "Python is a versatile language..."}},
				{ID: "a3", Title: "Data Analysis Project", Type: course.TypeAssignment,
					Assignment: &course.AssignmentContent{Description: "Analyze the provided CSV dataset."}},
			},
		},
		{
			ID:           "c4",
			Title:        "Digital Marketing 101",
			Description:  "SEO, Social Media, and Email Marketing strategies.",
			Category:     "Marketing",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l5", Title: "SEO Fundamentals", Type: course.TypeVideo,
					Video: &course.VideoContent{URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Duration: "15:00"}},
				{ID: "a4", Title: "Create a Campaign", Type: course.TypeAssignment,
					Assignment: &course.AssignmentContent{Description: "Draft a social media campaign plan."}},
			},
		},
		{
			ID:           "c5",
			Title:        "Business Management",
			Description:  "Leadership, strategy, and operations management.",
			Category:     "Business",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l6", Title: "Leadership Styles", Type: course.TypeText,
					Text: &course.TextContent{Body: "Different styles of leadership..."}},
			},
		},
		{
			ID:           "c6",
			Title:        "Creative Writing",
			Description:  "Storytelling techniques for fiction and non-fiction.",
			Category:     "Arts",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l7", Title: "Character Development", Type: course.TypeText,
					Text: &course.TextContent{Body: "Creating believable characters..."}},
			},
		},
		{
			ID:           "c7",
			Title:        "Cybersecurity Basics",
			Description:  "Protect systems and networks from digital attacks.",
			Category:     "Technology",
			InstructorID: "u1",
			Content: []course.ContentItem{
				{ID: "l8", Title: "Network Security", Type: course.TypeVideo,
					Video: &course.VideoContent{URL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Duration: "12:00"}},
			},
		},
	}
}
