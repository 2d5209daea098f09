package registrytypes

import (
	"fmt"
	"github.com/bgstats/play-service/internal/repository/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"reflect"
)

var CodecRegistry = createCodecRegistry()

var PlayDateType = reflect.TypeOf(model.PlayDate{})

func createCodecRegistry() *bsoncodec.Registry {
	r := bson.NewRegistry()

	r.RegisterTypeEncoder(PlayDateType, bsoncodec.ValueEncoderFunc(PlayDateEncodeValue))
	r.RegisterTypeDecoder(PlayDateType, bsoncodec.ValueDecoderFunc(PlayDateDecodeValue))

	return r
}

// PlayDateEncodeValue stores a PlayDate as a "2006-01-02" string, or null when unset.
func PlayDateEncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != PlayDateType {
		return bsoncodec.ValueEncoderError{Name: "playDateEncodeValue", Types: []reflect.Type{PlayDateType}, Received: val}
	}

	d := val.Interface().(model.PlayDate)
	if d.IsZero() {
		return vw.WriteNull()
	}

	return vw.WriteString(d.String())
}

func PlayDateDecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != PlayDateType {
		return bsoncodec.ValueDecoderError{Name: "playDateDecodeValue", Types: []reflect.Type{PlayDateType}, Received: val}
	}

	var d model.PlayDate
	switch vrType := vr.Type(); vrType {
	case bson.TypeString:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if s != "" {
			if d, err = model.ParsePlayDate(s); err != nil {
				return err
			}
		}
	case bson.TypeNull:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	case bson.TypeUndefined:
		if err := vr.ReadUndefined(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode %v into a PlayDate", vrType)
	}

	val.Set(reflect.ValueOf(d))
	return nil
}
