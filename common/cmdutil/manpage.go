//
// (C) Copyright 2021-2026 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package cmdutil

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// ManPageStdout is the output name that selects the supplied writer
// instead of a file.
const ManPageStdout = "-"

// WriteManPage renders the parser's man page to the named file, or to
// stdout when the name is empty or ManPageStdout.
func WriteManPage(p *flags.Parser, stdout io.Writer, output string) (err error) {
	if output == "" || output == ManPageStdout {
		p.WriteManPage(stdout)
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "failed to create man page %q", output)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	p.WriteManPage(f)
	return nil
}
