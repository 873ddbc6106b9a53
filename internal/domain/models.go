package domain

import "time"

// User is a registered learner. TotalPoints, Level and the completion
// counters are mutated only through the user store; Rank is transient and
// filled in by the leaderboard ranker on the way out.
type User struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	JoinedAt            time.Time `json:"joinedAt"`
	TotalPoints         int       `json:"totalPoints"`
	Level               int       `json:"level"`
	HackathonsCompleted int       `json:"hackathonsCompleted"`
	QuizzesCompleted    int       `json:"quizzesCompleted"`
	Rank                int       `json:"rank"`
}

// QuestionKind discriminates how a question is graded.
type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple-choice"
	QuestionTrueFalse      QuestionKind = "true-false"
	QuestionCoding         QuestionKind = "coding"
)

// Question is one graded item of a quiz. Choice kinds carry a correct option
// index; coding questions carry the expected text and are matched by strict
// equality (no fuzzy matching).
type Question struct {
	ID          string       `json:"id"`
	Kind        QuestionKind `json:"type"`
	Prompt      string       `json:"question"`
	Options     []string     `json:"options,omitempty"`
	Correct     AnswerValue  `json:"correctAnswer"`
	Explanation string       `json:"explanation,omitempty"`
	Points      int          `json:"points"`
	CodeSnippet string       `json:"codeSnippet,omitempty"`
}

// Quiz is immutable catalog content.
type Quiz struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Difficulty   string     `json:"difficulty"`
	Category     string     `json:"category"`
	Questions    []Question `json:"questions"`
	TimeLimit    int        `json:"timeLimit"` // minutes
	PassingScore int        `json:"passingScore"`
	TotalPoints  int        `json:"totalPoints"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Hackathon is immutable catalog content.
type Hackathon struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Difficulty          string    `json:"difficulty"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	Duration            string    `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Prize               string    `json:"prize"`
	Technologies        []string  `json:"technologies"`
	Status              string    `json:"status"` // upcoming | active | ended
	Requirements        []string  `json:"requirements"`
	CreatedBy           string    `json:"createdBy"`
}

// Submission is a project entry for a hackathon.
type Submission struct {
	ID          string    `json:"id"`
	HackathonID string    `json:"hackathonId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GithubURL   string    `json:"githubUrl"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// AnswerRecord is the graded outcome of a single question within an attempt.
type AnswerRecord struct {
	QuestionID string      `json:"questionId"`
	Answer     AnswerValue `json:"answer"`
	Correct    bool        `json:"isCorrect"`
	Points     int         `json:"points"`
}

// QuizAttempt is one completed submission of answers for a quiz. Attempts are
// append-only and never mutated after creation.
type QuizAttempt struct {
	ID          string         `json:"id"`
	QuizID      string         `json:"quizId"`
	UserID      string         `json:"userId"`
	Answers     []AnswerRecord `json:"answers"`
	Score       int            `json:"score"`
	TotalPoints int            `json:"totalPoints"`
	Percentage  float64        `json:"percentage"`
	TimeSpent   int            `json:"timeSpent"` // seconds
	CompletedAt time.Time      `json:"completedAt"`
	Passed      bool           `json:"passed"`
}

// LeaderboardEntry is a ranked projection of a user's standing. It is
// recomputed on every request and never persisted.
//
// HackathonsWon stays zero until a real hackathon-result feed exists.
type LeaderboardEntry struct {
	Rank          int  `json:"rank"`
	User          User `json:"user"`
	TotalPoints   int  `json:"totalPoints"`
	HackathonsWon int  `json:"hackathonsWon"`
	QuizzesPassed int  `json:"quizzesPassed"`
	Streak        int  `json:"streak"`
}

// Leaderboard is the full ordered board, used for snapshots pushed to
// websocket subscribers.
type Leaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ActivityType tags entries of a user's recent-activity feed.
type ActivityType string

const (
	ActivityQuizPass     ActivityType = "quiz_pass"
	ActivityQuizComplete ActivityType = "quiz_complete"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Points      int          `json:"points"`
	Timestamp   time.Time    `json:"timestamp"`
}

// UserProgress summarizes a user's history. Streaks are computed from UTC
// calendar days containing at least one passing attempt.
type UserProgress struct {
	UserID              string     `json:"userId"`
	TotalPoints         int        `json:"totalPoints"`
	Level               int        `json:"level"`
	HackathonsCompleted int        `json:"hackathonsCompleted"`
	HackathonsWon       int        `json:"hackathonsWon"`
	QuizzesCompleted    int        `json:"quizzesCompleted"`
	QuizzesPassed       int        `json:"quizzesPassed"`
	CurrentStreak       int        `json:"currentStreak"`
	LongestStreak       int        `json:"longestStreak"`
	RecentActivity      []Activity `json:"recentActivity"`
}
