package support

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
)

// RegisterDocumentSteps wires the steps that stage input files and inspect
// output files inside the scenario sandbox.
func (testCtx *TestContext) RegisterDocumentSteps(sc *godog.ScenarioContext) {
	sc.Step(`^an empty directory "([^"]*)"$`, testCtx.anEmptyDirectory)
	sc.Step(`^a file "([^"]*)" that is not a PDF$`, testCtx.aFileThatIsNotAPDF)
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
	sc.Step(`^the file "([^"]*)" should not exist$`, testCtx.theFileShouldNotExist)
}

func (testCtx *TestContext) anEmptyDirectory(dir string) error {
	return os.MkdirAll(testCtx.substituteVariables(dir), 0o750)
}

// aFileThatIsNotAPDF creates a file with a .pdf name but garbage content.
func (testCtx *TestContext) aFileThatIsNotAPDF(path string) error {
	path = testCtx.substituteVariables(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("this is not a PDF document"), 0o600)
}

func (testCtx *TestContext) theFileShouldExist(path string) error {
	path = testCtx.substituteVariables(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected file %s to exist: %w", path, err)
	}
	return nil
}

func (testCtx *TestContext) theFileShouldNotExist(path string) error {
	path = testCtx.substituteVariables(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("expected file %s to not exist", path)
	} else if !os.IsNotExist(err) && !strings.Contains(err.Error(), "not a directory") {
		return err
	}
	return nil
}
