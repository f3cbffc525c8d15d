/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package embedded

import (
	"errors"
	"fmt"
)

var ErrIllegalArguments = errors.New("illegal arguments")
var ErrInvalidOptions = fmt.Errorf("%w: invalid options", ErrIllegalArguments)
var ErrOutOfRange = errors.New("index out of range")
var ErrUnderflow = errors.New("underflow")
var ErrEmptyContainer = fmt.Errorf("%w: container is empty", ErrUnderflow)
var ErrAllocationFailure = errors.New("allocation failure")
var ErrKeyNotFound = errors.New("key not found")
