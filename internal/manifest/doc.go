// Package manifest loads, inspects and writes Kubernetes manifests.
//
// Documents are kept as a yaml.Node tree rather than decoded into structs,
// so fields sealkit never touches (comments, key order, annotations, unknown
// fields) survive a load, mutate, dump cycle. Only the values of the data map
// are ever rewritten.
//
//	doc, err := manifest.Load(content)
//	if err != nil {
//	    return err // wraps errors.ErrParse
//	}
//	if doc.Kind() != manifest.KindSecret {
//	    return errors.ErrNotASecret
//	}
//	data := doc.Data()
//	for _, entry := range data.Entries() {
//	    data.Set(entry.Key, strings.ToUpper(entry.Value))
//	}
//	out, err := doc.Dump()
package manifest
