// Package extract implements the fact extractors: pattern-based
// recognition of prices, package attributes, and contact identifiers in
// free page text.
//
// Extraction is purely lexical. No semantic parsing happens here; every
// match carries a bounded context window that downstream analysis uses
// for category inference, language tagging, and human review. Extractors
// never deduplicate: when one numeral is matched by two marker grammars
// it yields two facts, and the clustering stage absorbs the duplicates.
package extract
