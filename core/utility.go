// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "strings"

// mergeNames concatenates layer or extension name lists, dropping
// duplicates while keeping the first occurrence in place. Names are
// compared without any trailing null terminator.
func mergeNames(lists ...[]string) []string {
	var (
		merged []string
		seen   = make(map[string]struct{})
	)
	for _, list := range lists {
		for _, name := range list {
			key := strings.TrimRight(name, "\x00")
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, key)
		}
	}
	return merged
}
