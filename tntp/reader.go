package tntp

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sueflow/sueflow/logging"
	"github.com/sueflow/sueflow/network"
)

// ReadNetwork parses linkPath and tripPath into a finalized
// network.Network. It never calls os.Exit; all failures, including the
// ones the reference implementation treats as fatal (malformed rows,
// negative demand, unreachable destinations), are returned as errors for
// the caller to report.
func ReadNetwork(linkPath, tripPath string, opts ...Option) (*network.Network, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	header, err := readLinkMetadata(linkPath, cfg.Logger)
	if err != nil {
		return nil, err
	}

	net, err := network.New(header.numNodes, header.numArcs, header.numZones,
		header.firstThroughNode, header.distanceFactor, header.tollFactor)
	if err != nil {
		return nil, err
	}

	if err := readLinkRows(linkPath, header, net, cfg.Logger); err != nil {
		return nil, err
	}

	if err := readTripFile(tripPath, net, cfg.Logger); err != nil {
		return nil, err
	}

	if err := net.Finalize(); err != nil {
		return nil, err
	}

	return net, nil
}

type linkHeader struct {
	numZones, numArcs, numNodes, firstThroughNode int
	distanceFactor, tollFactor                    float64
}

const missing = -1

func readLinkMetadata(linkPath string, logger *logging.Logger) (linkHeader, error) {
	f, err := os.Open(linkPath)
	if err != nil {
		return linkHeader{}, err
	}
	defer f.Close()

	h := linkHeader{numZones: missing, numArcs: missing, numNodes: missing, firstThroughNode: missing}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		kind, tag, value, err := parseMetadataLine(scanner.Text())
		if err != nil {
			return linkHeader{}, fmt.Errorf("%s: %w", linkPath, err)
		}
		switch kind {
		case lineBlank, lineComment, lineData:
			continue
		}

		switch tag {
		case "NUMBER OF ZONES":
			h.numZones, err = strconv.Atoi(value)
		case "NUMBER OF LINKS":
			h.numArcs, err = strconv.Atoi(value)
		case "NUMBER OF NODES":
			h.numNodes, err = strconv.Atoi(value)
		case "FIRST THRU NODE":
			var v int
			v, err = strconv.Atoi(value)
			h.firstThroughNode = v - 1
		case "DISTANCE FACTOR":
			h.distanceFactor, err = strconv.ParseFloat(value, 64)
		case "TOLL FACTOR":
			h.tollFactor, err = strconv.ParseFloat(value, 64)
		case "END OF METADATA":
			return finalizeLinkHeader(h, linkPath)
		default:
			logger.Warnf("%s: ignoring unknown metadata tag %q", linkPath, tag)
		}
		if err != nil {
			return linkHeader{}, fmt.Errorf("%s: metadata tag %q: %w", linkPath, tag, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return linkHeader{}, err
	}

	return linkHeader{}, fmt.Errorf("%s: %w", linkPath, ErrUnexpectedEOF)
}

func finalizeLinkHeader(h linkHeader, linkPath string) (linkHeader, error) {
	if h.numZones == missing || h.numNodes == missing || h.numArcs == missing {
		return linkHeader{}, fmt.Errorf("%s: %w", linkPath, ErrMissingMetadata)
	}
	if h.firstThroughNode == missing {
		h.firstThroughNode = 0
	}
	if h.distanceFactor == missing {
		h.distanceFactor = 0
	}
	if h.tollFactor == missing {
		h.tollFactor = 0
	}

	return h, nil
}

func readLinkRows(linkPath string, header linkHeader, net *network.Network, logger *logging.Logger) error {
	f, err := os.Open(linkPath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	inMetadata := true
	row := 0
	for scanner.Scan() && row < header.numArcs {
		line := scanner.Text()
		if inMetadata {
			kind, tag, _, err := parseMetadataLine(line)
			if err != nil {
				return fmt.Errorf("%s: %w", linkPath, err)
			}
			if kind == lineMetadata && tag == "END OF METADATA" {
				inMetadata = false
			}
			continue
		}

		trimmed, blank := parseDataLine(line)
		if blank {
			continue
		}

		var tail, head, linkType int
		var capacity, length, freeFlowTime, alpha, beta, speedLimit, toll float64
		n, err := fmt.Sscanf(trimmed, "%d %d %f %f %f %f %f %f %f %d",
			&tail, &head, &capacity, &length, &freeFlowTime, &alpha, &beta, &speedLimit, &toll, &linkType)
		if err != nil || n != 10 {
			return fmt.Errorf("%s: row %d: %w", linkPath, row, ErrMalformedLinkRow)
		}
		if freeFlowTime < 0 {
			return fmt.Errorf("%s: row %d: %w", linkPath, row, ErrNegativeFreeFlowTime)
		}
		if alpha < 0 {
			return fmt.Errorf("%s: row %d: %w", linkPath, row, ErrNegativeAlpha)
		}
		if beta < 0 {
			return fmt.Errorf("%s: row %d: %w", linkPath, row, ErrNegativeBeta)
		}
		if length < 0 {
			logger.Warnf("%s: row %d: negative link length %g", linkPath, row, length)
		}
		if speedLimit < 0 {
			logger.Warnf("%s: row %d: negative speed limit %g", linkPath, row, speedLimit)
		}
		if toll < 0 {
			logger.Warnf("%s: row %d: negative toll %g", linkPath, row, toll)
		}

		net.Arcs[row] = network.Arc{
			Tail:         tail - 1,
			Head:         head - 1,
			Capacity:     capacity,
			Length:       length,
			FreeFlowTime: freeFlowTime,
			Alpha:        alpha,
			Beta:         beta,
			SpeedLimit:   speedLimit,
			Toll:         toll,
			LinkType:     linkType,
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if row < header.numArcs {
		return fmt.Errorf("%s: %w", linkPath, ErrUnexpectedEOF)
	}

	return nil
}

func readTripFile(tripPath string, net *network.Network, logger *logging.Logger) error {
	f, err := os.Open(tripPath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	inMetadata := true
	origin := 0
	for scanner.Scan() {
		line := scanner.Text()
		if inMetadata {
			kind, tag, value, err := parseMetadataLine(line)
			if err != nil {
				return fmt.Errorf("%s: %w", tripPath, err)
			}
			if kind != lineMetadata {
				continue
			}
			switch tag {
			case "NUMBER OF ZONES":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("%s: %w", tripPath, err)
				}
				if n != net.NumZones {
					return fmt.Errorf("%s: %w", tripPath, ErrZoneCountMismatch)
				}
			case "DISTANCE FACTOR":
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("%s: %w", tripPath, err)
				}
				net.DistanceFactor = v
			case "TOLL FACTOR":
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("%s: %w", tripPath, err)
				}
				net.TollFactor = v
			case "END OF METADATA":
				inMetadata = false
			default:
				logger.Warnf("%s: ignoring unknown metadata tag %q", tripPath, tag)
			}
			continue
		}

		if err := readTripDataLine(line, tripPath, net, &origin); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// readTripDataLine handles one non-metadata line of a trip file: either
// an "Origin N" header, which updates *origin, or a ";"-delimited run of
// "dest : demand" entries for the current origin.
func readTripDataLine(line, tripPath string, net *network.Network, origin *int) error {
	trimmed, blank := parseDataLine(line)
	if blank {
		return nil
	}

	if idx := strings.Index(trimmed, "Origin"); idx >= 0 {
		var o int
		if _, err := fmt.Sscanf(trimmed[idx+len("Origin"):], "%d", &o); err != nil {
			return fmt.Errorf("%s: malformed Origin header: %w", tripPath, err)
		}
		if o < 1 || o > net.NumZones {
			return fmt.Errorf("%s: origin %d: %w", tripPath, o, ErrOriginOutOfRange)
		}
		*origin = o - 1

		return nil
	}

	for _, field := range strings.Split(trimmed, ";") {
		field = strings.TrimSpace(field)
		if len(field) <= 1 {
			continue
		}
		var dest int
		var demand float64
		if n, err := fmt.Sscanf(field, "%d : %f", &dest, &demand); err != nil || n != 2 {
			break
		}
		if dest < 1 || dest > net.NumZones {
			return fmt.Errorf("%s: destination %d: %w", tripPath, dest, ErrDestinationOutOfRange)
		}
		if err := net.Demand.Set(*origin, dest-1, demand); err != nil {
			return fmt.Errorf("%s: %w", tripPath, err)
		}
	}

	return nil
}
