package settings

// Merge combines two JSON objects with right-hand precedence: every key in
// overlay wins over base, recursing when both sides hold an object at the same
// key. Arrays and scalars are replaced wholesale, never element-merged. Keys
// present only in base are preserved. Neither input is mutated.
func Merge(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		overlayObj, overlayIsObj := v.(map[string]any)
		baseObj, baseIsObj := merged[k].(map[string]any)
		if overlayIsObj && baseIsObj {
			merged[k] = Merge(baseObj, overlayObj)
			continue
		}
		merged[k] = v
	}
	return merged
}
