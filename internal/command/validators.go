// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tfctl/kdiff/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// IdentityValidator accepts path=key pairs.
func IdentityValidator(value any) error {
	specs, _ := value.([]string)
	for _, spec := range specs {
		if _, _, err := splitIdentity(spec); err != nil {
			return err
		}
	}
	return nil
}

// splitIdentity parses "spec.template.spec.containers[*].ports=containerPort".
func splitIdentity(spec string) (string, string, error) {
	path, key, ok := strings.Cut(spec, "=")
	path, key = strings.TrimSpace(path), strings.TrimSpace(key)
	if !ok || path == "" || key == "" {
		return "", "", fmt.Errorf("identity %q must be path=key", spec)
	}
	return path, key, nil
}
