package main

func rootOrCwd(root string) string {
	if root != "" {
		return root
	}
	return "."
}
