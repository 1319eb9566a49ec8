package repository

import "strings"

const defaultNamespace = "default"

// namespacedKey prefixes key so several planners can share one medium.
func namespacedKey(namespace, key string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = defaultNamespace
	}
	return namespace + ":" + key
}
