package main

import (
	"fmt"

	"github.com/trezcool/learnhub/storage/bootstrap"
)

// seed installs the default dataset, or repairs an existing one (legacy email
// rewrite + missing catalog entries).
func (cli *commandLine) seed() error {
	if err := bootstrap.Run(cli.store, cli.log); err != nil {
		return err
	}
	fmt.Println("default dataset is in place")
	return nil
}
