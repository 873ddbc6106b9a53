package cli

import (
	"time"

	"hackquest-service/internal/domain"
)

// seedQuizzes provides demo catalog content used when Postgres is not
// configured. Question points always sum to the quiz's totalPoints.
func seedQuizzes() []domain.Quiz {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Quiz{
		{
			ID:           "1",
			Title:        "JavaScript Fundamentals",
			Description:  "Test your knowledge of JavaScript basics including variables, functions, arrays, and objects.",
			Difficulty:   "Beginner",
			Category:     "Programming",
			TimeLimit:    30,
			PassingScore: 70,
			TotalPoints:  30,
			CreatedAt:    created,
			Questions: []domain.Question{
				{
					ID:          "1",
					Kind:        domain.QuestionMultipleChoice,
					Prompt:      "What is the correct way to declare a variable in JavaScript?",
					Options:     []string{"var name = 'John';", "variable name = 'John';", "v name = 'John';", "declare name = 'John';"},
					Correct:     domain.IndexAnswer(0),
					Explanation: "In JavaScript, variables are declared using 'var', 'let', or 'const' keywords.",
					Points:      10,
				},
				{
					ID:          "2",
					Kind:        domain.QuestionMultipleChoice,
					Prompt:      "Which method is used to add an element to the end of an array?",
					Options:     []string{"append()", "push()", "add()", "insert()"},
					Correct:     domain.IndexAnswer(1),
					Explanation: "The push() method adds one or more elements to the end of an array.",
					Points:      10,
				},
				{
					ID:          "3",
					Kind:        domain.QuestionTrueFalse,
					Prompt:      "JavaScript is a statically typed language.",
					Correct:     domain.IndexAnswer(0),
					Explanation: "JavaScript is a dynamically typed language, not statically typed.",
					Points:      10,
				},
			},
		},
		{
			ID:           "2",
			Title:        "React & Hooks",
			Description:  "Advanced React concepts including hooks, context, and performance optimization.",
			Difficulty:   "Intermediate",
			Category:     "Frontend",
			TimeLimit:    45,
			PassingScore: 75,
			TotalPoints:  40,
			CreatedAt:    created,
			Questions: []domain.Question{
				{
					ID:          "1",
					Kind:        domain.QuestionMultipleChoice,
					Prompt:      "What hook is used to manage state in functional components?",
					Options:     []string{"useEffect", "useState", "useContext", "useReducer"},
					Correct:     domain.IndexAnswer(1),
					Explanation: "useState is the basic hook for managing state in functional components.",
					Points:      15,
				},
				{
					ID:          "2",
					Kind:        domain.QuestionCoding,
					Prompt:      "Write a custom hook that manages a counter with increment and decrement functions.",
					Correct:     domain.TextAnswer("function useCounter(initialValue = 0) {\n  const [count, setCount] = useState(initialValue);\n  const increment = () => setCount(count + 1);\n  const decrement = () => setCount(count - 1);\n  return { count, increment, decrement };\n}"),
					Explanation: "Custom hooks should start with 'use' and can encapsulate stateful logic.",
					Points:      25,
					CodeSnippet: "function useCounter(initialValue = 0) {\n  // Your implementation here\n}",
				},
			},
		},
	}
}

func seedHackathons() []domain.Hackathon {
	return []domain.Hackathon{
		{
			ID:                  "1",
			Title:               "Full-Stack E-commerce Challenge",
			Description:         "Build a complete e-commerce platform with React, Node.js, and PostgreSQL. Include user authentication, product catalog, shopping cart, and payment integration.",
			Difficulty:          "Advanced",
			StartDate:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2024, 1, 17, 23, 59, 59, 0, time.UTC),
			Duration:            "48 hours",
			MaxParticipants:     100,
			CurrentParticipants: 87,
			Prize:               "$5,000 + Internship Opportunities",
			Technologies:        []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			Status:              "active",
			Requirements:        []string{"Responsive design", "User authentication", "Product management", "Shopping cart functionality", "Payment integration", "Clean code and documentation"},
			CreatedBy:           "admin",
		},
		{
			ID:                  "2",
			Title:               "AI-Powered Study Assistant",
			Description:         "Create an intelligent study assistant using machine learning to help students learn more effectively.",
			Difficulty:          "Intermediate",
			StartDate:           time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2024, 1, 22, 23, 59, 59, 0, time.UTC),
			Duration:            "48 hours",
			MaxParticipants:     150,
			CurrentParticipants: 120,
			Prize:               "$3,000 + Tech Mentorship",
			Technologies:        []string{"Python", "TensorFlow", "React", "FastAPI"},
			Status:              "upcoming",
			Requirements:        []string{"ML-powered recommendations", "Interactive UI", "Progress tracking", "Content generation"},
			CreatedBy:           "admin",
		},
		{
			ID:                  "3",
			Title:               "Mobile Fitness Tracker",
			Description:         "Develop a cross-platform mobile app for fitness tracking with social features and gamification.",
			Difficulty:          "Beginner",
			StartDate:           time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
			EndDate:             time.Date(2024, 1, 27, 23, 59, 59, 0, time.UTC),
			Duration:            "48 hours",
			MaxParticipants:     200,
			CurrentParticipants: 156,
			Prize:               "$2,000 + Fitness Tech Bundle",
			Technologies:        []string{"React Native", "Firebase", "Node.js"},
			Status:              "upcoming",
			Requirements:        []string{"Activity tracking", "Social features", "Gamification elements", "Data visualization"},
			CreatedBy:           "admin",
		},
	}
}
