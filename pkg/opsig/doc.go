// Package opsig resolves free-text combinations of surgical operation
// names into every valid numeric ID signature implied by the reference
// catalog and its multi-ID rules.
//
// Quick start:
//
//	r, err := opsig.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, _ := r.Resolve("上颌骨全切术+游离肌骨皮瓣修复术")
//	for _, sig := range res.Signatures {
//	    fmt.Println(sig) // "2,9" then "2,132"
//	}
//
// A Resolver is immutable after construction and safe for concurrent use.
// Create one per catalog and reuse it across requests.
package opsig
