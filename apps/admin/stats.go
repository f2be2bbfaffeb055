package main

import "fmt"

// stats prints the dashboard counters.
func (cli *commandLine) stats() error {
	users, err := cli.usrSvc.QueryAll()
	if err != nil {
		return err
	}
	var students int
	for _, usr := range users {
		if usr.IsStudent() {
			students++
		}
	}

	courses, err := cli.courseSvc.QueryAll()
	if err != nil {
		return err
	}
	enrollments, err := cli.enrSvc.Count()
	if err != nil {
		return err
	}

	fmt.Printf("Total students:     %d\n", students)
	fmt.Printf("Total courses:      %d\n", len(courses))
	fmt.Printf("Active enrollments: %d\n", enrollments)
	return nil
}
