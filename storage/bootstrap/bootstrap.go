package bootstrap

import (
	"strings"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/enrollment"
	"github.com/trezcool/learnhub/core/feedback"
	"github.com/trezcool/learnhub/core/submission"
	"github.com/trezcool/learnhub/core/user"
)

// Run prepares the store for use. It is called once at process start:
// on an existing installation it rewrites legacy email domains (persisting
// only when something changed) and appends any default course missing from
// the catalog; on a fresh installation it writes the default dataset, never
// touching a collection a prior session already wrote.
func Run(store core.Store, log core.Logger) error {
	var users []user.User
	if err := store.Load(user.StoreKey, &users); err != nil {
		return err
	}

	if len(users) > 0 {
		if err := migrateLegacyEmails(store, users, log); err != nil {
			return err
		}
		return reseedCourses(store, log)
	}

	// fresh installation
	if err := store.Save(user.StoreKey, defaultUsers()); err != nil {
		return err
	}
	seeds := map[string]interface{}{
		course.StoreKey:     defaultCourses(),
		enrollment.StoreKey: []enrollment.Enrollment{},
		submission.StoreKey: []submission.Submission{},
		feedback.StoreKey:   []feedback.Feedback{},
	}
	for key, records := range seeds {
		if store.Has(key) {
			continue
		}
		if err := store.Save(key, records); err != nil {
			return err
		}
	}
	if log != nil {
		log.Info("default dataset installed")
	}
	return nil
}

// migrateLegacyEmails rewrites emails from the legacy domain to the current
// one; the collection is persisted only when at least one rewrite occurred.
func migrateLegacyEmails(store core.Store, users []user.User, log core.Logger) error {
	legacy := core.Conf.GetString("legacyEmailDomain")
	org := core.Conf.GetString("orgEmailDomain")

	changed := 0
	for i, usr := range users {
		if strings.HasSuffix(usr.Email, legacy) {
			users[i].Email = strings.TrimSuffix(usr.Email, legacy) + org
			changed++
		}
	}
	if changed == 0 {
		return nil
	}
	if log != nil {
		log.Info("migrated legacy account emails", changed)
	}
	return store.Save(user.StoreKey, users)
}

// reseedCourses appends default catalog entries absent from the store. An
// existing course with a matching id is never overwritten.
func reseedCourses(store core.Store, log core.Logger) error {
	var courses []course.Course
	if err := store.Load(course.StoreKey, &courses); err != nil {
		return err
	}
	existing := make(map[string]bool, len(courses))
	for _, crs := range courses {
		existing[crs.ID] = true
	}

	appended := 0
	for _, seed := range defaultCourses() {
		if existing[seed.ID] {
			continue
		}
		courses = append(courses, seed)
		appended++
	}
	if appended == 0 {
		return nil
	}
	if log != nil {
		log.Info("reseeded default courses", appended)
	}
	return store.Save(course.StoreKey, courses)
}
