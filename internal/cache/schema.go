package cache

import "fmt"

// Redis key pattern helpers
//
// Keys are namespaced so several deployments can share one Redis server.
//
// Key pattern: peyote:{namespace}:result:{beads}

// ResultKey returns the Redis key holding the memoized result for a bead count.
// Pattern: peyote:{namespace}:result:{beads}
func ResultKey(namespace string, beads int) string {
	return fmt.Sprintf("peyote:%s:result:%d", namespace, beads)
}
