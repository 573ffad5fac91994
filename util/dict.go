/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"math"
)

/*
Dict is a mapping from hashable values to values which preserves the
insertion order of its keys. Writing to an existing key updates the value
but keeps the original key position.
*/
type Dict struct {
	keys    []interface{}
	storage map[interface{}]interface{}
}

/*
NewDict creates a new empty Dict.
*/
func NewDict() *Dict {
	return &Dict{nil, make(map[interface{}]interface{})}
}

/*
NormalizeKey checks that a given value can be used as a dictionary key and
returns its canonical form. Only immutable values (numbers, strings, booleans
and the null value) are valid keys. Integral float values are folded into
integer keys so e.g. 1 and 1.0 address the same entry.
*/
func NormalizeKey(key interface{}) (interface{}, error) {

	switch k := key.(type) {

	case nil, bool, string, int64:
		return key, nil

	case float64:
		if k == math.Trunc(k) && !math.IsInf(k, 0) {
			return int64(k), nil
		}
		return key, nil
	}

	return nil, fmt.Errorf("Key %v is not hashable", key)
}

/*
Set stores a value under a given key.
*/
func (d *Dict) Set(key interface{}, value interface{}) error {
	nkey, err := NormalizeKey(key)

	if err == nil {
		if _, ok := d.storage[nkey]; !ok {
			d.keys = append(d.keys, nkey)
		}

		d.storage[nkey] = value
	}

	return err
}

/*
Get returns the value stored under a given key.
*/
func (d *Dict) Get(key interface{}) (interface{}, bool) {
	nkey, err := NormalizeKey(key)

	if err != nil {
		return nil, false
	}

	val, ok := d.storage[nkey]

	return val, ok
}

/*
Delete removes the value stored under a given key. Returns true if an entry
was removed.
*/
func (d *Dict) Delete(key interface{}) bool {
	nkey, err := NormalizeKey(key)

	if err != nil {
		return false
	}

	if _, ok := d.storage[nkey]; !ok {
		return false
	}

	delete(d.storage, nkey)

	for i, k := range d.keys {
		if k == nkey {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}

	return true
}

/*
Keys returns all keys in insertion order.
*/
func (d *Dict) Keys() []interface{} {
	ret := make([]interface{}, len(d.keys))
	copy(ret, d.keys)
	return ret
}

/*
Values returns all values in insertion order of their keys.
*/
func (d *Dict) Values() []interface{} {
	ret := make([]interface{}, 0, len(d.keys))

	for _, k := range d.keys {
		ret = append(ret, d.storage[k])
	}

	return ret
}

/*
Items returns all key / value pairs in insertion order.
*/
func (d *Dict) Items() [][]interface{} {
	ret := make([][]interface{}, 0, len(d.keys))

	for _, k := range d.keys {
		ret = append(ret, []interface{}{k, d.storage[k]})
	}

	return ret
}

/*
Len returns the number of entries.
*/
func (d *Dict) Len() int {
	return len(d.keys)
}

/*
Copy returns a shallow copy of this Dict.
*/
func (d *Dict) Copy() *Dict {
	ret := NewDict()

	for _, k := range d.keys {
		ret.Set(k, d.storage[k])
	}

	return ret
}

/*
Clear removes all entries.
*/
func (d *Dict) Clear() {
	d.keys = nil
	d.storage = make(map[interface{}]interface{})
}
