package neuron

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// swcSomaType is the SWC structure identifier for soma rows.
const swcSomaType = 1

// ReadSWC reads a skeleton from an SWC file. SWC rows are
// "id type x y z radius parent" separated by whitespace; lines starting
// with '#' are comments. Rows with structure type 1 are recorded as soma
// nodes. The file name (without extension) becomes the neuron ID.
func ReadSWC(path string) (*Skeleton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("swc: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sk := &Skeleton{Base: Base{ID: name}}

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			return nil, fmt.Errorf("swc: %s:%d: expected 7 columns, got %d", path, lineNo, len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("swc: %s:%d: bad node id %q", path, lineNo, fields[0])
		}
		typ, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("swc: %s:%d: bad structure type %q", path, lineNo, fields[1])
		}
		var xyz [3]float32
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[2+i], 32)
			if err != nil {
				return nil, fmt.Errorf("swc: %s:%d: bad coordinate %q", path, lineNo, fields[2+i])
			}
			xyz[i] = float32(v)
		}
		radius, err := strconv.ParseFloat(fields[5], 32)
		if err != nil {
			return nil, fmt.Errorf("swc: %s:%d: bad radius %q", path, lineNo, fields[5])
		}
		parent, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, fmt.Errorf("swc: %s:%d: bad parent id %q", path, lineNo, fields[6])
		}
		if parent < 0 {
			parent = NoParent
		}
		sk.Nodes = append(sk.Nodes, Node{
			ID:     id,
			Parent: parent,
			Pos:    math32.Vec3(xyz[0], xyz[1], xyz[2]),
			Radius: float32(radius),
		})
		if typ == swcSomaType {
			sk.Soma = append(sk.Soma, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("swc: %s: %w", path, err)
	}
	return sk, nil
}
