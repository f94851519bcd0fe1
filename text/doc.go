// Package text is the catalogue of probabilistic text transforms:
// character, word and sentence granularity noise for training-data
// augmentation.
//
// 🚀 What is text?
//
//	An Enricher owns a seedable random generator and exposes every
//	transform as a method with the uniform (string, p) → string
//	contract, so method values drop straight into a randaug pool:
//
//	Character-based
//	  AddCharacters · AddContractions · AddFatThumbs · AddLeet ·
//	  AddStickyKeys · AddWhitespace · RemoveCharacters ·
//	  RemoveContractions · RemovePunctuation · RemoveWhitespace ·
//	  SwapChars
//
//	Word-based
//	  AddHypernyms · AddHyponyms · AddMisspelling · AddParens ·
//	  AddSynonyms · RemoveArticles · SwapWords
//
//	Sentence-based
//	  AddApplause · AddBacktranslation · AddBytes · AddLove
//
// ✨ Semantics:
//
//   - Every transform is pure with respect to its inputs; the only
//     side effect is consuming entropy from the Enricher's generator.
//   - p is the per-occurrence (or per-sentence) Bernoulli probability;
//     p=0 is always the identity, p=1 always fires.
//   - English lookup tables ship in tables.go as ordered mappings;
//     the word-level tables can be overridden per Enricher when you
//     have richer lexical data.
//
// Concurrency:
//
//	Methods of one Enricher share its generator and must not run
//	concurrently without external synchronization. Construct one
//	Enricher per goroutine instead; seeded instances are independent.
//
// ⚙️ Usage:
//
//	e := text.New(text.WithSeed(42))
//	noisy := e.AddLeet("you what mate?", 0.2)
package text
