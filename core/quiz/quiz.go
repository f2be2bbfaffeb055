package quiz

import (
	"math"
	"time"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/enrollment"
)

// ResultsKey is the persisted collection name. The history is append-only:
// one record per attempt, never overwritten.
const ResultsKey = "lms_quiz_results_v2"

var (
	// errors
	ErrQuizNotFound = core.NewNotFoundError("quiz not found")

	nowFunc = time.Now // mockable
)

// Result is one quiz attempt's outcome.
type Result struct {
	UserID        string    `json:"userId"`
	CourseID      string    `json:"courseId"`
	QuizItemID    string    `json:"quizItemId"`
	Score         int       `json:"score"`
	QuestionCount int       `json:"questionCount"`
	Date          time.Time `json:"date"` // UTC
}

// Passed reports whether the attempt met the pass mark.
func (r *Result) Passed() bool {
	return Passed(r.Score)
}

// Score grades a set of answers (question index -> chosen option index)
// against the question sequence's answer key.
func Score(questions []course.Question, answers map[int]int) int {
	if len(questions) == 0 {
		return 0
	}
	var correct int
	for idx, q := range questions {
		if chosen, ok := answers[idx]; ok && chosen == q.CorrectOption {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(questions))))
}

// Passed reports whether a score meets the configured pass mark.
func Passed(score int) bool {
	return score >= core.Conf.GetInt("quizPassMark")
}

type Service struct {
	store       core.Store
	courses     *course.Service
	enrollments *enrollment.Service
}

func NewService(store core.Store, courseSvc *course.Service, enrollmentSvc *enrollment.Service) *Service {
	return &Service{store: store, courses: courseSvc, enrollments: enrollmentSvc}
}

// SubmitAttempt scores an attempt against the course's quiz item, appends the
// outcome to the result history and, on a pass, records the quiz item as
// completed for the user's enrollment.
func (svc *Service) SubmitAttempt(userID, courseID, itemID string, answers map[int]int) (Result, error) {
	crs, err := svc.courses.Get(courseID)
	if err != nil {
		return Result{}, err
	}
	var questions []course.Question
	found := false
	for _, item := range crs.Content {
		if item.ID == itemID && item.Quiz != nil {
			questions = item.Quiz.Questions
			found = true
			break
		}
	}
	if !found {
		return Result{}, ErrQuizNotFound
	}

	res := Result{
		UserID:        userID,
		CourseID:      courseID,
		QuizItemID:    itemID,
		Score:         Score(questions, answers),
		QuestionCount: len(questions),
		Date:          nowFunc().UTC(),
	}

	var results []Result
	if err := svc.store.Load(ResultsKey, &results); err != nil {
		return Result{}, err
	}
	results = append(results, res)
	if err := svc.store.Save(ResultsKey, results); err != nil {
		return Result{}, err
	}

	if res.Passed() {
		if _, err := svc.enrollments.RecordCompletion(userID, courseID, itemID); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// ResultsForUser returns the user's attempt history, oldest first.
func (svc *Service) ResultsForUser(userID string) ([]Result, error) {
	var results []Result
	if err := svc.store.Load(ResultsKey, &results); err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(results))
	for _, res := range results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}
