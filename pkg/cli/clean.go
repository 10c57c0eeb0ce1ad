// Copyright (c) 2025, SE401 Design Pattern Advisor Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
)

const defaultStaleDir = "node_modules/backend"

func cleanCmd() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove a stale build directory",
		Description: `Remove a directory left behind by earlier builds (default node_modules/backend)
so it cannot shadow the frontend's dependencies. Nothing happens when the
directory does not exist.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: defaultStaleDir,
				Usage: "directory to remove",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return removeStale(stdout(cmd), cmd.String("dir"))
		},
	}
}

func removeStale(w io.Writer, dir string) error {
	dir = filepath.Clean(dir)
	if dir == "." || dir == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q", dir)
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "No stale directory at %s, nothing to do\n", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	slog.Debug("removing stale directory", "dir", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	fmt.Fprintf(w, "Removed stale directory %s\n", dir)
	return nil
}
